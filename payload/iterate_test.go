package payload

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArrItems(t *testing.T) {
	a := Array(2)
	_ = a.SetArrElement(0, Int(1))
	_ = a.SetArrElement(1, Int(2))

	items := a.ArrItems()
	require.Len(t, items, 2)

	require.Nil(t, Int(1).ArrItems())
}

func TestMapEntries(t *testing.T) {
	m := Map()
	_ = m.MapPut("a", Int(1))
	_ = m.MapPut("b", Int(2))

	seen := map[string]int64{}
	for k, v := range m.MapEntries() {
		i, _ := v.AsInt()
		seen[k] = i
	}
	require.Equal(t, map[string]int64{"a": 1, "b": 2}, seen)
}

func TestMapEntries_EarlyStop(t *testing.T) {
	m := Map()
	_ = m.MapPut("a", Int(1))
	_ = m.MapPut("b", Int(2))

	count := 0
	for range m.MapEntries() {
		count++
		break
	}
	require.Equal(t, 1, count)
}

func TestMapEntries_NonMapYieldsNothing(t *testing.T) {
	count := 0
	for range Int(1).MapEntries() {
		count++
	}
	require.Equal(t, 0, count)
}
