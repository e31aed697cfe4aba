package maven

import (
	"cmp"
	"slices"
)

// BillOfMaterials is an imported set of managed dependency versions.
// Lower Order values are rendered first.
type BillOfMaterials struct {
	GroupID    string
	ArtifactID string
	Version    *VersionReference
	Order      int
}

// NewBom returns a bill of materials with a literal version and the default
// order of math.MaxInt32 used for boms that do not care about their position.
func NewBom(groupID, artifactID, version string) BillOfMaterials {
	return BillOfMaterials{
		GroupID:    groupID,
		ArtifactID: artifactID,
		Version:    VersionOf(version),
		Order:      defaultBomOrder,
	}
}

const defaultBomOrder = 1<<31 - 1

// BomContainer holds bills of materials. Entries are unique by groupId and
// artifactId: adding a bom whose coordinates are already present under
// another identifier replaces that entry in place.
type BomContainer struct {
	Container[BillOfMaterials]
}

// Add stores bom under id, honouring coordinate uniqueness.
func (c *BomContainer) Add(id string, bom BillOfMaterials) {
	if existing, ok := c.findCoordinates(bom.GroupID, bom.ArtifactID); ok {
		id = existing
	}

	c.Container.Add(id, bom)
}

// HasCoordinates reports whether a bom with the given groupId and artifactId exists.
func (c *BomContainer) HasCoordinates(groupID, artifactID string) bool {
	_, ok := c.findCoordinates(groupID, artifactID)
	return ok
}

// Ordered returns the boms sorted by ascending Order. Boms with the same
// order keep their insertion order.
func (c *BomContainer) Ordered() []BillOfMaterials {
	boms := c.Values()
	slices.SortStableFunc(boms, func(a, b BillOfMaterials) int {
		return cmp.Compare(a.Order, b.Order)
	})

	return boms
}

func (c *BomContainer) findCoordinates(groupID, artifactID string) (string, bool) {
	for _, id := range c.IDs() {
		bom, _ := c.Get(id)
		if bom.GroupID == groupID && bom.ArtifactID == artifactID {
			return id, true
		}
	}

	return "", false
}
