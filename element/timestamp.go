package element

import (
	"time"

	"github.com/ordtup/ordtup/errs"
	"github.com/ordtup/ordtup/varint"
	"github.com/ordtup/ordtup/wire"
)

// quarterHourBias centers the unsigned 7-bit offset field on zero, since
// UTC offsets range from -12:00 to +15:45 (spec §3) and the field can't
// represent a sign itself.
const quarterHourBias = 64

// timestampComponents derives the (wall-clock-as-UTC milliseconds, UTC
// offset in seconds) pair the wire format actually stores. Per spec §4.5,
// the encoder reads the instant's wall-clock fields (year .. microsecond)
// exactly as presented by its Location and treats them as if they were UTC
// — it does not convert the instant to true UTC first. This mirrors the
// source's timegm(&tm) call, which operates on the broken-down struct tm
// fields without consulting any real zone database.
func timestampComponents(t time.Time) (ms int64, offsetSeconds int) {
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	wallAsUTC := time.Date(y, mo, d, h, mi, s, t.Nanosecond(), time.UTC)

	ms = wallAsUTC.Unix()*1000 + int64(t.Nanosecond())/1_000_000
	_, offsetSeconds = t.Zone()

	return ms, offsetSeconds
}

// encodeTime writes a Time element's TIME/NEG_TIME tag and magnitude.
func encodeTime(w *wire.Writer, t time.Time) error {
	ms, offsetSeconds := timestampComponents(t)

	offsetQuarters := offsetSeconds/900 + quarterHourBias
	if offsetQuarters < 0 || offsetQuarters > 0x7F {
		return errs.ErrOffsetOutOfRange
	}

	magnitude := (ms << 7) | int64(offsetQuarters)

	if magnitude >= 0 {
		w.WriteByte(byte(KindTime))
		varint.Encode(w, uint64(magnitude))
	} else {
		w.WriteByte(byte(KindNegTime))
		varint.EncodeInverted(w, uint64(-magnitude))
	}

	return nil
}

// decodeTime is the full inverse of encodeTime. The source this codec is
// grounded on never implemented this direction (its read_time is a stub
// that aborts); this is the supplied replacement, per spec §4.5 and §9.
func decodeTime(r *wire.Reader, negative bool) (Element, error) {
	var magnitude int64

	if negative {
		v, err := varint.DecodeInverted(r)
		if err != nil {
			return Element{}, err
		}

		magnitude = -int64(v)
	} else {
		v, err := varint.Decode(r)
		if err != nil {
			return Element{}, err
		}

		magnitude = int64(v)
	}

	offsetQuarters := magnitude & 0x7F
	ms := magnitude >> 7
	offsetSeconds := int(offsetQuarters-quarterHourBias) * 900

	wallAsUTC := time.UnixMilli(ms).UTC()
	t := time.Date(
		wallAsUTC.Year(), wallAsUTC.Month(), wallAsUTC.Day(),
		wallAsUTC.Hour(), wallAsUTC.Minute(), wallAsUTC.Second(), wallAsUTC.Nanosecond(),
		time.FixedZone("", offsetSeconds),
	)

	return Time(t), nil
}
