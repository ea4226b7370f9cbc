package ptime_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brandenburg-rta/rta-bounds/rta/ptime"
)

func TestOffsetConversionsRoundTrip(t *testing.T) {
	d := ptime.Duration(10)
	o := ptime.FromTimeZero(d)
	require.Equal(t, d, o.SinceTimeZero())

	o2 := ptime.ClosedFromTimeZero(d)
	require.Equal(t, d, o2.ClosedSinceTimeZero())
}

func TestDistanceTo(t *testing.T) {
	a := ptime.FromTimeZero(10)
	b := ptime.FromTimeZero(25)
	require.Equal(t, b, a.Add(a.DistanceTo(b)))
}

func TestSaturatingSub(t *testing.T) {
	require.Equal(t, ptime.Duration(0), ptime.Duration(3).SaturatingSub(5))
	require.Equal(t, ptime.Duration(2), ptime.Duration(5).SaturatingSub(3))
	require.Equal(t, ptime.Service(0), ptime.Service(3).SaturatingSub(5))
}

func TestDivMod(t *testing.T) {
	q, r := ptime.Duration(17).DivMod(5)
	require.Equal(t, uint64(3), q)
	require.Equal(t, ptime.Duration(2), r)
}

func TestServiceDurationIdentity(t *testing.T) {
	d := ptime.Duration(42)
	require.Equal(t, ptime.Service(42), d.AsService())
	require.Equal(t, d, d.AsService().AsDuration())
}
