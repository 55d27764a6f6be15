package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "calendar date",
			value: "2015-02-01",
			want:  time.Date(2015, time.February, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "surrounding whitespace",
			value: " 2015-02-01\n",
			want:  time.Date(2015, time.February, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "date time without zone",
			value: "2015-02-01T10:30:00",
			want:  time.Date(2015, time.February, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "rfc3339",
			value: "2015-02-01T10:30:00Z",
			want:  time.Date(2015, time.February, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			name:    "not a date",
			value:   "2015-02-30x",
			wantErr: true,
		},
		{
			name:    "invalid day",
			value:   "2015-02-30",
			wantErr: true,
		},
		{
			name:    "empty",
			value:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestSameMonth(t *testing.T) {
	feb1 := time.Date(2015, time.February, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameMonth(feb1, time.Date(2015, time.February, 28, 23, 59, 0, 0, time.UTC)))
	assert.False(t, SameMonth(feb1, time.Date(2015, time.March, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, SameMonth(feb1, time.Date(2016, time.February, 1, 0, 0, 0, 0, time.UTC)), "same month of another year")
}

func TestFieldName_IsMatchField(t *testing.T) {
	assert.True(t, FieldCarrier.IsMatchField())
	assert.True(t, FieldPackageSize.IsMatchField())
	assert.False(t, FieldDate.IsMatchField())
	assert.False(t, FieldLimit.IsMatchField())
}

func TestLogLevel_Validate(t *testing.T) {
	assert.NoError(t, LogLevelTrace.Validate())
	assert.NoError(t, LogLevel("INFO").Validate())
	assert.Error(t, LogLevel("verbose").Validate())
}
