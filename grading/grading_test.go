package grading_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hexcore/blockmesh/grading"
)

func TestResolveChop_CountOnlyIsUniform(t *testing.T) {
	c := grading.ChopCount(10)
	seg, err := grading.ResolveChop(1.0, c)
	assert.NoError(t, err)
	assert.Equal(t, 10, seg.Count)
	assert.InDelta(t, 1.0, seg.TotalExpansion, 1e-9)
}

func TestResolveChop_CountAndTotalExpansion(t *testing.T) {
	c := grading.ChopCountExpansion(10, 4.0)
	seg, err := grading.ResolveChop(1.0, c)
	assert.NoError(t, err)
	assert.Equal(t, 10, seg.Count)
	assert.InDelta(t, 4.0, seg.TotalExpansion, 1e-6)
}

func TestResolveChop_StartEndDerivesCount(t *testing.T) {
	c := grading.ChopStartEnd(0.02, 0.2)
	seg, err := grading.ResolveChop(1.0, c)
	assert.NoError(t, err)
	assert.Greater(t, seg.Count, 0)
	assert.InDelta(t, 0.2/0.02, seg.TotalExpansion, 0.5) // rounding moves it a bit
}

func TestResolveChop_Underconstrained(t *testing.T) {
	_, err := grading.ResolveChop(1.0, grading.Chop{})
	assert.ErrorIs(t, err, grading.ErrInvalidChop)
}

func TestBuildGrading_SingleChopDefaultsToWholeLength(t *testing.T) {
	g, err := grading.BuildGrading(2.0, []grading.Chop{grading.ChopCount(5)})
	assert.NoError(t, err)
	assert.True(t, g.IsDefined())
	assert.Equal(t, 5, g.Count())
}

func TestBuildGrading_MultipleChopsMustSumToOne(t *testing.T) {
	chops := []grading.Chop{
		{Count: intp(5), LengthRatio: 0.5},
		{Count: intp(5), LengthRatio: 0.4},
	}
	_, err := grading.BuildGrading(2.0, chops)
	assert.ErrorIs(t, err, grading.ErrInvalidChop)
}

func TestGrading_InversionInvolution(t *testing.T) {
	g, err := grading.BuildGrading(1.0, []grading.Chop{grading.ChopCountExpansion(8, 3.0)})
	assert.NoError(t, err)

	roundTrip := g.Invert().Invert()
	assert.True(t, g.Equal(roundTrip))
}

func TestGrading_RescalePreservesCount(t *testing.T) {
	g := grading.Uniform(1.0, 10, 1.0)
	rescaled := g.Rescale(5.0)
	assert.Equal(t, g.Count(), rescaled.Count())
	assert.InDelta(t, 5.0, rescaled.Length, 1e-9)
}

func intp(v int) *int { return &v }
