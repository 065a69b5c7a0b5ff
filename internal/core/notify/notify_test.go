package notify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverity_Resolve(t *testing.T) {
	assert.Equal(t, SeverityInfo, Severity("").Resolve())
	assert.Equal(t, SeverityError, SeverityError.Resolve())
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in      string
		want    Severity
		wantErr bool
	}{
		{in: "info", want: SeverityInfo},
		{in: "SUCCESS", want: SeveritySuccess},
		{in: " warning ", want: SeverityWarning},
		{in: "Error", want: SeverityError},
		{in: "fatal", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSeverity(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPosition_ResolveAndValidate(t *testing.T) {
	assert.Equal(t, Position{Vertical: Bottom, Horizontal: Left}, Position{}.Resolve())
	assert.Equal(t, Position{Vertical: Top, Horizontal: Right}, Position{Vertical: Top, Horizontal: Right}.Resolve())

	require.NoError(t, Position{}.Validate())
	require.NoError(t, Position{Vertical: Top, Horizontal: Center}.Validate())
	require.Error(t, Position{Vertical: "middle"}.Validate())
	require.Error(t, Position{Horizontal: "up"}.Validate())
}

type stringer struct{}

func (stringer) String() string { return "from stringer" }

func TestText(t *testing.T) {
	assert.Equal(t, "", Text(nil))
	assert.Equal(t, "saved", Text("saved"))
	assert.Equal(t, "boom", Text(errors.New("boom")))
	assert.Equal(t, "from stringer", Text(stringer{}))
	assert.Equal(t, "42", Text(42))
}
