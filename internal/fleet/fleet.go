package fleet

import (
	"fmt"
	"strings"
)

// Tier is the environment classification assigned to a region.
type Tier string

const (
	TierDev  Tier = "DEV"
	TierTest Tier = "TEST"
	TierStg  Tier = "STG"
	TierPrd  Tier = "PRD"
)

// tierCycle is the fixed round-robin order in which tiers are assigned
// across regions.
var tierCycle = []Tier{TierDev, TierTest, TierStg, TierPrd}

const (
	regionCount  = 10
	clusterCount = 20

	// Cluster slots above this index belong to the second hardware generation.
	gen1MaxIndex = 10

	baseDomain = "example.com"
)

// ClusterRecord describes one cluster slot within a region. The struct field
// order is the serialization order of the fixture document.
type ClusterRecord struct {
	// Region the cluster belongs to (R1..R10)
	Region string `json:"region"`
	// Name of the cluster slot within the region (C1..C20)
	Name string `json:"name"`
	// Type is the environment tier of the owning region, shared by all
	// clusters in that region
	Type Tier `json:"type"`
	// URLPattern is the cluster-specific URL template; {api} is a literal
	// placeholder resolved by downstream consumers, never interpolated here
	URLPattern string `json:"urlPattern"`
	// DisplayName equals Name
	DisplayName string `json:"displayName"`
	// RegionalURLPattern is the region-tier URL template, without the
	// cluster name
	RegionalURLPattern string `json:"regionalUrlPattern"`
	// ClusterType is the hardware generation label (Gen1/Gen2)
	ClusterType string `json:"clusterType"`
}

// TierForRegion returns the tier assigned to the region at the given
// zero-based position.
func TierForRegion(idx int) Tier {
	return tierCycle[idx%len(tierCycle)]
}

// Generate enumerates the full fleet: regions R1..R10 in order, each with
// cluster slots C1..C20 in order. The result is identical on every call.
func Generate() []ClusterRecord {
	records := make([]ClusterRecord, 0, regionCount*clusterCount)

	for idx := 0; idx < regionCount; idx++ {
		region := fmt.Sprintf("R%d", idx+1)
		tier := TierForRegion(idx)
		tierLower := strings.ToLower(string(tier))

		for c := 1; c <= clusterCount; c++ {
			name := fmt.Sprintf("C%d", c)

			clusterType := "Gen1"
			if c > gen1MaxIndex {
				clusterType = "Gen2"
			}

			records = append(records, ClusterRecord{
				Region:             region,
				Name:               name,
				Type:               tier,
				URLPattern:         fmt.Sprintf("https://{api}.%s.%s.%s", strings.ToLower(name), tierLower, baseDomain),
				DisplayName:        name,
				RegionalURLPattern: fmt.Sprintf("https://{api}.%s.%s", tierLower, baseDomain),
				ClusterType:        clusterType,
			})
		}
	}

	return records
}
