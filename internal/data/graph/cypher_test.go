package graph

import (
	"strings"
	"testing"

	"github.com/yungbote/arbor-backend/internal/domain"
)

func TestCreateBranchCypherGuardsBeforeMerge(t *testing.T) {
	q := createBranchCypher(domain.LabelTrunk, false)

	if !strings.Contains(q, "MATCH (parent:Trunk { name: $parent_name })") {
		t.Fatalf("parent match missing or wrong label: %s", q)
	}
	guard := strings.Index(q, "WHERE NOT EXISTS { (existing:Branch { name: $name })-[:BELONGS_TO]->(parent) }")
	merge := strings.Index(q, "MERGE (branch:Branch { name: $name, note: $note })-[:BELONGS_TO]->(parent)")
	if guard == -1 || merge == -1 {
		t.Fatalf("guard or merge missing: %s", q)
	}
	if guard > merge {
		t.Fatalf("existence check must precede the merge: %s", q)
	}
}

func TestCreateBranchCypherSplicesParentLabel(t *testing.T) {
	q := createBranchCypher(domain.LabelBranch, false)
	if !strings.Contains(q, "(parent:Branch { name: $parent_name })") {
		t.Fatalf("branch parent label not spliced: %s", q)
	}
}

func TestCreateBranchCypherCycleGuardIsOptional(t *testing.T) {
	without := createBranchCypher(domain.LabelTrunk, false)
	with := createBranchCypher(domain.LabelTrunk, true)

	if strings.Contains(without, "BELONGS_TO*") {
		t.Fatalf("cycle guard present when disabled: %s", without)
	}
	if !strings.Contains(with, "NOT EXISTS { (parent)-[:BELONGS_TO*]->(:Branch { name: $name }) }") {
		t.Fatalf("cycle guard missing when enabled: %s", with)
	}
}

func TestConnectBranchCypherMatchesBothEndpoints(t *testing.T) {
	q := connectBranchCypher(domain.LabelTrunk, false)

	for _, want := range []string{
		"MATCH (from:Branch { name: $name })",
		"MATCH (to:Trunk { name: $parent_name })",
		"WHERE NOT EXISTS { (from)-[:BELONGS_TO]->(to) }",
		"MERGE (from)-[:BELONGS_TO]->(to)",
	} {
		if !strings.Contains(q, want) {
			t.Fatalf("connect statement missing %q: %s", want, q)
		}
	}
	if strings.Contains(q, "MERGE (to") {
		t.Fatalf("connect must never create the parent endpoint: %s", q)
	}
}

func TestConnectBranchCypherCycleGuard(t *testing.T) {
	q := connectBranchCypher(domain.LabelBranch, true)
	if !strings.Contains(q, "NOT EXISTS { (to)-[:BELONGS_TO*]->(from) }") {
		t.Fatalf("ancestry guard missing: %s", q)
	}
}

func TestCreateReferenceCypherGuardsPerSubject(t *testing.T) {
	q := createReferenceCypher(domain.LabelBranch)

	for _, want := range []string{
		"MATCH (about:Branch { name: $about })",
		"WHERE NOT EXISTS { (existing:Reference { title: $title })-[:IS_ABOUT]->(about) }",
		"MERGE (ref:Reference { title: $title, url: $url })-[:IS_ABOUT]->(about)",
	} {
		if !strings.Contains(q, want) {
			t.Fatalf("reference statement missing %q: %s", want, q)
		}
	}
}

func TestCrossReferenceCypherNeverCreatesTarget(t *testing.T) {
	q := crossReferenceCypher(domain.LabelTrunk, domain.LabelBranch)

	for _, want := range []string{
		"MATCH (ref:Reference { title: $title })-[:IS_ABOUT]->(:Trunk { name: $from })",
		"MATCH (to:Branch { name: $to })",
		"WHERE NOT EXISTS { (ref)-[:IS_ABOUT]->(to) }",
		"MERGE (ref)-[:IS_ABOUT]->(to)",
	} {
		if !strings.Contains(q, want) {
			t.Fatalf("cross-reference statement missing %q: %s", want, q)
		}
	}
}

func TestDeleteCyphersScopeNodeVsEdge(t *testing.T) {
	if q := deleteBranchCypher(domain.LabelTrunk); !strings.Contains(q, "DETACH DELETE branch") {
		t.Fatalf("node-scoped delete must DETACH DELETE: %s", q)
	}
	detach := detachBranchCypher(domain.LabelTrunk)
	if !strings.Contains(detach, "DELETE rel") || strings.Contains(detach, "DETACH") {
		t.Fatalf("edge-scoped delete must remove only the relationship: %s", detach)
	}

	if q := deleteReferenceCypher(domain.LabelBranch); !strings.Contains(q, "DETACH DELETE ref") {
		t.Fatalf("node-scoped reference delete must DETACH DELETE: %s", q)
	}
	detachRef := detachReferenceCypher(domain.LabelBranch)
	if !strings.Contains(detachRef, "[rel:IS_ABOUT]") || !strings.Contains(detachRef, "DELETE rel") {
		t.Fatalf("edge-scoped reference delete wrong: %s", detachRef)
	}
}

func TestListCyphersAreOneHopAndOrdered(t *testing.T) {
	branches := getBranchesCypher(domain.LabelTrunk)
	if strings.Contains(branches, "*") {
		t.Fatalf("get branches must be one hop: %s", branches)
	}
	if !strings.Contains(branches, "ORDER BY name") {
		t.Fatalf("get branches must order by name: %s", branches)
	}

	refs := getReferencesCypher(domain.LabelBranch)
	if strings.Contains(refs, "*") {
		t.Fatalf("get references must be one hop: %s", refs)
	}
	if !strings.Contains(refs, "ORDER BY title") {
		t.Fatalf("get references must order by title: %s", refs)
	}
}

func TestTraversalCyphersAreVariableLength(t *testing.T) {
	if q := descendantsCypher(domain.LabelTrunk); !strings.Contains(q, "[:BELONGS_TO*]") || !strings.Contains(q, "DISTINCT") {
		t.Fatalf("descendants statement wrong: %s", q)
	}
	if q := ancestorsCypher(domain.LabelBranch); !strings.Contains(q, "[:BELONGS_TO*]") || !strings.Contains(q, "head(labels(ancestor))") {
		t.Fatalf("ancestors statement wrong: %s", q)
	}
}
