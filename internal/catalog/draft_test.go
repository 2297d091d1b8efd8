package catalog

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaseDraftNormalize(t *testing.T) {
	d, err := CaseDraft{Name: "  Jane Doe ", Age: 40, Location: " Harbor ", Description: " seen at pier "}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", d.Name)
	assert.Equal(t, "Harbor", d.Location)
	assert.Equal(t, "seen at pier", d.Description)

	bad := []CaseDraft{
		{Age: 10, Location: "x"},
		{Name: "x", Age: 0, Location: "x"},
		{Name: "x", Age: 200, Location: "x"},
		{Name: "x", Age: 10},
		{Name: "x", Age: 10, Location: "x", Reward: -1},
	}
	for _, b := range bad {
		_, err := b.Normalize()
		assert.ErrorIs(t, err, ErrInvalidDraft, "draft %+v", b)
	}
}

func TestTipDraftNormalize(t *testing.T) {
	d, err := TipDraft{CaseID: " 001 ", Description: " saw her "}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, "001", d.CaseID)

	_, err = TipDraft{Description: "x"}.Normalize()
	assert.ErrorIs(t, err, ErrInvalidDraft)
	_, err = TipDraft{CaseID: "001"}.Normalize()
	assert.ErrorIs(t, err, ErrInvalidDraft)
}

func TestResolveTipTarget(t *testing.T) {
	s := NewInMemory()
	target, err := ResolveTipTarget(context.Background(), s, "003")
	require.NoError(t, err)
	assert.Equal(t, "Emma Rodriguez", target.Name)

	_, err = ResolveTipTarget(context.Background(), s, "002")
	assert.ErrorIs(t, err, ErrUnknownCase)
}

func TestDraftDigest(t *testing.T) {
	a := CaseDraft{Name: "Jane Doe", Age: 40, Location: "Harbor"}
	b := a
	b.Age = 41

	assert.Len(t, a.Digest(), 66)
	assert.True(t, strings.HasPrefix(a.Digest(), "0x"))
	assert.Equal(t, a.Digest(), a.Digest())
	assert.NotEqual(t, a.Digest(), b.Digest())

	tip := TipDraft{CaseID: "001", Description: "saw her"}
	assert.NotEqual(t, tip.Digest(), TipDraft{CaseID: "003", Description: "saw her"}.Digest())
}

func TestDraftDigestSeparatesFields(t *testing.T) {
	a := TipDraft{CaseID: "001\x1fx", Description: "y"}
	b := TipDraft{CaseID: "001", Description: "x\x1fy"}
	assert.NotEqual(t, a.Digest(), b.Digest())

	c := CaseDraft{Name: "ab", Age: 30, Location: "c"}
	d := CaseDraft{Name: "a", Age: 30, Location: "bc"}
	assert.NotEqual(t, c.Digest(), d.Digest())
}
