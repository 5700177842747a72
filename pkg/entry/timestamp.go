package entry

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

const layoutISO = "2006-01-02"

// Timestamp is a creation instant persisted as epoch milliseconds.
type Timestamp struct {
	time.Time
}

// NewTimestamp truncates t to millisecond precision so it survives a round
// trip through the persisted log unchanged.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: time.UnixMilli(t.UnixMilli())}
}

// Millis returns the epoch milliseconds for t.
func (t Timestamp) Millis() int64 {
	return t.UnixMilli()
}

// DateString renders the local calendar date (YYYY-MM-DD) of t.
func (t Timestamp) DateString() string {
	return t.Local().Format(layoutISO)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("0"), nil
	}
	return []byte(strconv.FormatInt(t.Millis(), 10)), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var millis json.Number
	if err := json.Unmarshal(b, &millis); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	v, err := millis.Int64()
	if err != nil {
		// Some exports write fractional milliseconds.
		f, ferr := millis.Float64()
		if ferr != nil {
			return fmt.Errorf("timestamp: %w", err)
		}
		v = int64(f)
	}
	if v == 0 {
		t.Time = time.Time{}
		return nil
	}
	t.Time = time.UnixMilli(v)
	return nil
}

func (t Timestamp) String() string {
	return t.UTC().Format(time.RFC3339)
}
