package dbtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromStripsDateAndZone(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	src := time.Date(2025, 3, 1, 18, 30, 45, 0, loc)

	tod := From(src)
	assert.Equal(t, "18:30:45", tod.String())
}

func TestParse(t *testing.T) {
	tod, err := Parse("18:30")
	require.NoError(t, err)
	assert.Equal(t, "18:30:00", tod.String())

	tod, err = Parse("07:05:09")
	require.NoError(t, err)
	assert.Equal(t, "07:05:09", tod.String())

	_, err = Parse("25:99")
	assert.Error(t, err)
}

func TestScan(t *testing.T) {
	var tod Tod
	require.NoError(t, tod.Scan("16:30:00"))
	assert.Equal(t, "16:30:00", tod.String())

	require.NoError(t, tod.Scan([]byte("08:15")))
	assert.Equal(t, "08:15:00", tod.String())

	require.NoError(t, tod.Scan(time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC)))
	assert.Equal(t, "09:00:00", tod.String())

	require.NoError(t, tod.Scan(nil))
	assert.True(t, tod.Time.IsZero())

	assert.Error(t, tod.Scan(42))
}

func TestValue(t *testing.T) {
	tod, err := Parse("16:30:00")
	require.NoError(t, err)

	v, err := tod.Value()
	require.NoError(t, err)
	assert.Equal(t, "16:30:00", v)

	var zero Tod
	v, err = zero.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestJSONRoundTrip(t *testing.T) {
	tod, err := Parse("16:30:00")
	require.NoError(t, err)

	b, err := tod.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"16:30:00"`, string(b))

	var back Tod
	require.NoError(t, back.UnmarshalJSON(b))
	assert.Equal(t, tod.String(), back.String())
}

func TestDateOf(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	d := DateOf(time.Date(2025, 3, 1, 23, 59, 0, 0, loc))
	assert.Equal(t, "2025-03-01", d.String())
}

func TestYmdScan(t *testing.T) {
	var d Ymd
	require.NoError(t, d.Scan("2025-03-01"))
	assert.Equal(t, "2025-03-01", d.String())

	// driver DATE bisa mengirim time.Time utuh
	require.NoError(t, d.Scan(time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-07-04", d.String())

	require.NoError(t, d.Scan("2025-07-04T00:00:00Z"))
	assert.Equal(t, "2025-07-04", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.Time.IsZero())

	assert.Error(t, d.Scan(42))
}

func TestYmdValue(t *testing.T) {
	d, err := ParseYmd("2025-03-01")
	require.NoError(t, err)

	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2025-03-01", v)

	var zero Ymd
	v, err = zero.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
