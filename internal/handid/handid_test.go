package handid

import (
	"strings"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-engine/internal/randutil"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	id := New(randutil.New(1), nil).Generate()
	assert.Len(t, id, Length)

	u, err := Parse(id)
	require.NoError(t, err)
	assert.EqualValues(t, 7, u.Version())
}

func TestGenerateUnique(t *testing.T) {
	t.Parallel()

	g := New(randutil.New(1), quartz.NewMock(t))
	ids := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := g.Generate()
		if ids[id] {
			t.Fatalf("duplicate ID generated: %s", id)
		}
		ids[id] = true
	}
}

func TestGenerateTimeSorted(t *testing.T) {
	t.Parallel()

	clock := quartz.NewMock(t)
	g := New(randutil.New(7), clock)

	var ids []string
	for i := 0; i < 10; i++ {
		ids = append(ids, g.Generate())
		clock.Advance(time.Millisecond)
	}

	for i := 1; i < len(ids); i++ {
		if strings.Compare(ids[i-1], ids[i]) >= 0 {
			t.Errorf("IDs not sorted: %s >= %s", ids[i-1], ids[i])
		}
	}
}

func TestGenerateSortedWithinMillisecond(t *testing.T) {
	t.Parallel()

	g := New(randutil.New(5), quartz.NewMock(t))

	// More than the 12-bit counter holds, so the timestamp has to roll over.
	ids := make([]string, 5000)
	for i := range ids {
		ids[i] = g.Generate()
	}
	assert.IsIncreasing(t, ids)
}

func TestGenerateClockStepsBack(t *testing.T) {
	t.Parallel()

	clock := quartz.NewMock(t)
	g := New(randutil.New(5), clock)
	g.lastMS = clock.Now().Add(time.Second).UnixMilli()

	first := g.Generate()
	second := g.Generate()
	assert.Less(t, first, second)

	u, err := Parse(first)
	require.NoError(t, err)
	sec, nsec := u.Time().UnixTime()
	assert.Equal(t, g.lastMS, sec*1000+nsec/1e6)
}

func TestGenerateDeterministic(t *testing.T) {
	t.Parallel()

	clock := quartz.NewMock(t)
	a := New(randutil.New(99), clock)
	b := New(randutil.New(99), clock)
	for i := 0; i < 5; i++ {
		assert.Equal(t, a.Generate(), b.Generate())
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := New(randutil.New(3), nil).Generate()

	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "valid ID", id: valid},
		{name: "too short", id: valid[:20], wantErr: true},
		{name: "too long", id: valid + "00", wantErr: true},
		{name: "invalid character", id: "u" + valid[1:], wantErr: true},
		{name: "uppercase", id: strings.ToUpper(valid), wantErr: true},
		{name: "not version 7", id: strings.Repeat("0", Length), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
		})
	}
}
