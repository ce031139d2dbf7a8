package upstream

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixed(name string, v string, err error, calls *[]string) Candidate[string] {
	return Candidate[string]{
		Name: name,
		Fetch: func(context.Context) (string, error) {
			*calls = append(*calls, name)
			return v, err
		},
	}
}

func TestFirstSuccessShortCircuits(t *testing.T) {
	var calls []string
	v, from, err := FirstSuccess(context.Background(), "test", []Candidate[string]{
		fixed("a", "", absent(404, errors.New("missing")), &calls),
		fixed("b", "value", nil, &calls),
		fixed("c", "other", nil, &calls),
	})
	require.NoError(t, err)
	assert.Equal(t, "value", v)
	assert.Equal(t, "b", from)
	assert.Equal(t, []string{"a", "b"}, calls)
}

func TestFirstSuccessAllAbsentIsNotFound(t *testing.T) {
	var calls []string
	_, _, err := FirstSuccess(context.Background(), "test", []Candidate[string]{
		fixed("a", "", absent(404, errors.New("missing")), &calls),
		fixed("b", "", absent(200, errors.New("success is false")), &calls),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	require.Len(t, Failures(err), 2)
	assert.Equal(t, "a", Failures(err)[0].Candidate)
}

func TestFirstSuccessMixedIsTransport(t *testing.T) {
	var calls []string
	plain := errors.New("dial tcp: refused")
	_, _, err := FirstSuccess(context.Background(), "test", []Candidate[string]{
		fixed("a", "", absent(404, errors.New("missing")), &calls),
		fixed("b", "", plain, &calls),
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.ErrorIs(t, err, plain)
	assert.Contains(t, err.Error(), "b: dial tcp: refused")
}

func TestFirstSuccessStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var calls []string
	_, _, err := FirstSuccess(ctx, "test", []Candidate[string]{
		{Name: "a", Fetch: func(context.Context) (string, error) {
			calls = append(calls, "a")
			cancel()
			return "", errors.New("boom")
		}},
		fixed("b", "value", nil, &calls),
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"a"}, calls)
}
