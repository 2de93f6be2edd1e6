package lifesrc

import (
	"math/bits"
	"sort"

	"github.com/hollowgrid/lifesrc/internal/bitset"
)

// neighborOffsets fixes the correspondence between a neighbor index
// (0..7, as used by Cell.Nbhd and Desc's alive/unknown bits) and its
// (dx, dy) displacement, clockwise from north. builder.go wires
// Cell.Nbhd in this order when allocating the arena.
var neighborOffsets = [8][2]int{
	{0, -1},  // 0: N
	{1, -1},  // 1: NE
	{1, 0},   // 2: E
	{1, 1},   // 3: SE
	{0, 1},   // 4: S
	{-1, 1},  // 5: SW
	{-1, 0},  // 6: W
	{-1, -1}, // 7: NW
}

func offsetIndex(dx, dy int) int {
	for i, o := range neighborOffsets {
		if o[0] == dx && o[1] == dy {
			return i
		}
	}
	return -1
}

// dihedralTransforms returns the 8 coordinate maps of the symmetry group
// of the square (4 rotations x 2 reflections), the same group transform.go
// applies to board coordinates (spec §4.5); orbit.go applies it instead
// to the 8 Moore-neighborhood offsets, to decide which non-totalistic
// neighbor configurations are equivalent under rotation/reflection.
func dihedralTransforms() [8]func(dx, dy int) (int, int) {
	return [8]func(int, int) (int, int){
		func(dx, dy int) (int, int) { return dx, dy },
		func(dx, dy int) (int, int) { return -dy, dx },
		func(dx, dy int) (int, int) { return -dx, -dy },
		func(dx, dy int) (int, int) { return dy, -dx },
		func(dx, dy int) (int, int) { return -dx, dy },
		func(dx, dy int) (int, int) { return dy, dx },
		func(dx, dy int) (int, int) { return dx, -dy },
		func(dx, dy int) (int, int) { return -dy, -dx },
	}
}

// neighborPermutations precomputes, for each of the 8 group elements,
// the permutation it induces on neighbor indices 0..7.
func neighborPermutations() [8][8]int {
	var perms [8][8]int
	for t, transform := range dihedralTransforms() {
		for i, o := range neighborOffsets {
			nx, ny := transform(o[0], o[1])
			perms[t][i] = offsetIndex(nx, ny)
		}
	}
	return perms
}

// permutePattern applies a neighbor-index permutation to an 8-bit
// configuration bitmask.
func permutePattern(pattern uint8, perm [8]int) uint8 {
	var out uint8
	for i := 0; i < 8; i++ {
		if pattern&(1<<i) != 0 {
			out |= 1 << uint(perm[i])
		}
	}
	return out
}

// patternOrbit is one equivalence class of 8-bit neighbor configurations
// under the board's symmetry group, all sharing the same popcount.
type patternOrbit struct {
	count     int
	canonical uint8 // smallest pattern value in the orbit; used as a stable sort key
	members   bitset.Set
	letter    byte // 'a', 'b', 'c', ... assigned per count bucket, in canonical order
}

// orbitTable indexes every pattern's orbit by popcount, and maps
// (count, letter) back to its orbit. Built once at package init from
// pure arithmetic (no randomness, no external input), so it is
// deterministic and reproducible across runs and platforms.
type orbitTableT struct {
	byCount  [9][]*patternOrbit // orbits, grouped by neighbor count, canonical-ascending
	ofPattern [256]*patternOrbit
}

var orbitTable = buildOrbitTable()

func buildOrbitTable() *orbitTableT {
	perms := neighborPermutations()
	seen := bitset.New(256)
	var byCount [9][]*patternOrbit
	var ofPattern [256]*patternOrbit

	for p := 0; p < 256; p++ {
		if seen.Has(p) {
			continue
		}
		members := bitset.New(256)
		canonical := uint8(p)
		for _, perm := range perms {
			q := permutePattern(uint8(p), perm)
			members = members.Add(int(q))
			if q < canonical {
				canonical = q
			}
		}
		orb := &patternOrbit{
			count:     bits.OnesCount8(uint8(p)),
			canonical: canonical,
			members:   members,
		}
		members.Each(func(v int) {
			seen = seen.Add(v)
			ofPattern[v] = orb
		})
		byCount[orb.count] = append(byCount[orb.count], orb)
	}

	for count := range byCount {
		orbits := byCount[count]
		sort.Slice(orbits, func(i, j int) bool { return orbits[i].canonical < orbits[j].canonical })
		for i, orb := range orbits {
			orb.letter = byte('a' + i)
		}
	}
	return &orbitTableT{byCount: byCount, ofPattern: ofPattern}
}

// OrbitLetter returns the Hensel-style letter assigned to pattern's
// equivalence class, and the total number of distinct letters at that
// neighbor count (1 means the count is unambiguous and carries no
// letter in rule-string grammar, per spec §4.8).
func OrbitLetter(pattern uint8) (letter byte, total int) {
	orb := orbitTable.ofPattern[pattern]
	return orb.letter, len(orbitTable.byCount[orb.count])
}

// PatternsForLetter returns every 8-bit configuration with exactly count
// alive neighbors whose orbit was assigned letter. An unrecognized
// letter yields nil.
func PatternsForLetter(count int, letter byte) []uint8 {
	if count < 0 || count > 8 {
		return nil
	}
	for _, orb := range orbitTable.byCount[count] {
		if orb.letter == letter {
			var out []uint8
			orb.members.Each(func(v int) { out = append(out, uint8(v)) })
			sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
			return out
		}
	}
	return nil
}

// AllPatternsForCount returns every 8-bit configuration with exactly
// count alive neighbors, in ascending pattern-value order; used
// to expand a bare count digit (no letters) in a rule string, which
// means "every configuration with this many neighbors", per spec §4.8.
func AllPatternsForCount(count int) []uint8 {
	if count < 0 || count > 8 {
		return nil
	}
	var out []uint8
	for _, orb := range orbitTable.byCount[count] {
		orb.members.Each(func(v int) { out = append(out, uint8(v)) })
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// LettersForCount returns every letter in use at count, in canonical
// (alphabetical) order.
func LettersForCount(count int) []byte {
	if count < 0 || count > 8 {
		return nil
	}
	letters := make([]byte, len(orbitTable.byCount[count]))
	for i, orb := range orbitTable.byCount[count] {
		letters[i] = orb.letter
	}
	return letters
}
