package puzzle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    Policy
		wantErr bool
	}{
		{in: "", want: PolicyAbort},
		{in: "abort", want: PolicyAbort},
		{in: "skip", want: PolicySkip},
		{in: " SKIP ", want: PolicySkip},
		{in: "ignore", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePolicy(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "must be abort or skip")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPolicy_Handle(t *testing.T) {
	bad := errors.New("bad record")

	assert.Equal(t, bad, PolicyAbort.Handle(bad))
	assert.NoError(t, PolicySkip.Handle(bad))
	assert.NoError(t, PolicyAbort.Handle(nil))
	assert.NoError(t, PolicySkip.Handle(nil))

	var unset Policy
	assert.Equal(t, bad, unset.Handle(bad), "zero policy aborts")
	assert.Equal(t, "abort", unset.String())
}

func TestOptions_WithDefaults(t *testing.T) {
	got := Options{TopK: 0}.WithDefaults()
	assert.Equal(t, PolicyAbort, got.OnError)
	assert.Equal(t, DefaultChunkSize, got.ChunkSize)
	assert.Equal(t, 0, got.TopK, "zero top-k is a valid setting")

	got = Options{OnError: PolicySkip, TopK: 5, ChunkSize: 2}.WithDefaults()
	assert.Equal(t, Options{OnError: PolicySkip, TopK: 5, ChunkSize: 2}, got)
}

func TestResult_Answer(t *testing.T) {
	r := &Result{Answers: []Answer{{Part: 1, Value: 10}, {Part: 2, Value: 20}}}

	a, ok := r.Answer(2)
	require.True(t, ok)
	assert.Equal(t, uint64(20), a.Value)

	_, ok = r.Answer(3)
	assert.False(t, ok)
}
