package cargolock

import "sort"

// Resolve merges the package entries of the given lockfiles into one
// canonical sequence: deduplicated by full (name, version, checksum)
// identity and sorted ascending by (name, version).
//
// Entries without a checksum are dropped; they are the lockfile's own
// project entries rather than downloadable crates. Resolution is pure and
// order-independent over its inputs: the same set of lockfiles yields the
// identical sequence regardless of argument order. The error return exists
// for contract symmetry with the parsing collaborators and is always nil.
func Resolve(lockfiles []*Lockfile) ([]Package, error) {
	seen := make(map[identity]struct{})
	var packages []Package

	for _, lock := range lockfiles {
		for _, pkg := range lock.Packages {
			if !pkg.HasChecksum() {
				continue
			}
			id := pkg.identity()
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			packages = append(packages, pkg)
		}
	}

	sort.Slice(packages, func(i, j int) bool {
		return packages[i].Compare(packages[j]) < 0
	})

	return packages, nil
}
