package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type severity string

const (
	severityLow  severity = "low"
	severityHigh severity = "high"
)

type channel uint8

const (
	channelNone channel = iota
	channelEmail
	channelPager
)

func (c channel) IsValid() bool { return c == channelEmail || c == channelPager }

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{Unknown, "Unknown"},
		{Success, "Success"},
		{Error, "Error"},
		{Warning, "Warning"},
		{Info, "Info"},
		{Type(42), "Type(42)"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.String())
		})
	}
}

func TestTypeIsValid(t *testing.T) {
	assert.False(t, Unknown.IsValid())
	assert.True(t, Success.IsValid())
	assert.True(t, Error.IsValid())
	assert.True(t, Warning.IsValid())
	assert.True(t, Info.IsValid())
	assert.False(t, Type(-1).IsValid())
	assert.False(t, Type(5).IsValid())
}

func TestNewKind(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		wantErr error
	}{
		{name: "built-in type", value: Error},
		{name: "string enum", value: severityHigh},
		{name: "integer enum with IsValid", value: channelPager},
		{name: "plain string rejected", value: "Success", wantErr: ErrNotEnum},
		{name: "plain int rejected", value: 1, wantErr: ErrNotEnum},
		{name: "nil rejected", value: nil, wantErr: ErrNotEnum},
		{name: "struct rejected", value: Variant{}, wantErr: ErrNotEnum},
		{name: "float-based type rejected", value: float64(1), wantErr: ErrNotEnum},
		{name: "IsValid false rejected", value: channelNone, wantErr: ErrInvalidKind},
		{name: "built-in Unknown rejected", value: Unknown, wantErr: ErrInvalidKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, err := NewKind(tt.value)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrConfiguration)
				assert.True(t, k.IsZero())
				return
			}
			require.NoError(t, err)
			assert.False(t, k.IsZero())
			assert.Equal(t, tt.value, k.Value())
		})
	}
}

func TestKindAs(t *testing.T) {
	k, err := NewKind(severityLow)
	require.NoError(t, err)

	got, ok := KindAs[severity](k)
	assert.True(t, ok)
	assert.Equal(t, severityLow, got)

	_, ok = KindAs[Type](k)
	assert.False(t, ok, "downcast to another enum type must report a mismatch")

	_, ok = KindAs[string](k)
	assert.False(t, ok, "downcast to the underlying type must report a mismatch")
}

func TestKindIs(t *testing.T) {
	k := KindOf(Success)

	assert.True(t, k.Is(Success))
	assert.False(t, k.Is(Error))
	assert.False(t, k.Is(int(Success)), "same ordinal, different type")
	assert.False(t, k.Is(nil))
	assert.False(t, Kind{}.Is(Success))
}

func TestKindNames(t *testing.T) {
	k := KindOf(Warning)
	assert.Equal(t, "Warning", k.String())
	assert.Equal(t, testPkg+".Type", k.TypeName())

	custom, err := NewKind(severityHigh)
	require.NoError(t, err)
	assert.Equal(t, "high", custom.String())
	assert.Equal(t, testPkg+".severity", custom.TypeName())

	var zero Kind
	assert.Equal(t, "<none>", zero.String())
	assert.Equal(t, "", zero.TypeName())
}
