package graph

import (
	"fmt"

	"github.com/yungbote/arbor-backend/internal/domain"
)

// Statement assembly. Neo4j cannot parameterise labels, so the validated
// discriminator is spliced into the text. Callers must have checked
// Label.Valid() first; these builders never see raw input.

func matchNamed(alias string, label domain.Label, param string) string {
	return fmt.Sprintf("MATCH (%s:%s { name: $%s })", alias, label, param)
}

const (
	createTrunkCypher = "MERGE (trunk:Trunk { name: $name }) RETURN trunk.name AS name"
	getTrunksCypher   = "MATCH (trunk:Trunk) RETURN trunk.name AS name ORDER BY name"
	deleteTrunkCypher = "MATCH (trunk:Trunk { name: $name }) DETACH DELETE trunk"
)

// branchCycleGuard keeps a same-named branch from appearing above the parent
// it is being attached to.
const branchCycleGuard = " AND NOT EXISTS { (parent)-[:BELONGS_TO*]->(:Branch { name: $name }) }"

func createBranchCypher(parentLabel domain.Label, cycleGuard bool) string {
	q := matchNamed("parent", parentLabel, "parent_name") +
		" WHERE NOT EXISTS { (existing:Branch { name: $name })-[:BELONGS_TO]->(parent) }"
	if cycleGuard {
		q += branchCycleGuard
	}
	return q +
		" WITH parent" +
		" MERGE (branch:Branch { name: $name, note: $note })-[:BELONGS_TO]->(parent)" +
		" RETURN branch.name AS branch, branch.note AS note, parent.name AS parent"
}

const connectCycleGuard = " AND NOT EXISTS { (to)-[:BELONGS_TO*]->(from) }"

func connectBranchCypher(parentLabel domain.Label, cycleGuard bool) string {
	q := "MATCH (from:Branch { name: $name }) " +
		matchNamed("to", parentLabel, "parent_name") +
		" WHERE NOT EXISTS { (from)-[:BELONGS_TO]->(to) }"
	if cycleGuard {
		q += connectCycleGuard
	}
	return q +
		" MERGE (from)-[:BELONGS_TO]->(to)" +
		" RETURN from.name AS from, to.name AS to"
}

func getBranchesCypher(parentLabel domain.Label) string {
	return fmt.Sprintf(
		"MATCH (branch:Branch)-[:BELONGS_TO]->(:%s { name: $name })"+
			" RETURN branch.name AS name, branch.note AS note ORDER BY name",
		parentLabel)
}

func deleteBranchCypher(parentLabel domain.Label) string {
	return fmt.Sprintf(
		"MATCH (branch:Branch { name: $name })-[:BELONGS_TO]->(:%s { name: $parent_name })"+
			" DETACH DELETE branch",
		parentLabel)
}

func detachBranchCypher(parentLabel domain.Label) string {
	return fmt.Sprintf(
		"MATCH (:Branch { name: $name })-[rel:BELONGS_TO]->(:%s { name: $parent_name })"+
			" DELETE rel",
		parentLabel)
}

func createReferenceCypher(aboutLabel domain.Label) string {
	return matchNamed("about", aboutLabel, "about") +
		" WHERE NOT EXISTS { (existing:Reference { title: $title })-[:IS_ABOUT]->(about) }" +
		" WITH about" +
		" MERGE (ref:Reference { title: $title, url: $url })-[:IS_ABOUT]->(about)" +
		" RETURN ref.title AS title, ref.url AS url, about.name AS about"
}

func crossReferenceCypher(fromLabel, toLabel domain.Label) string {
	return fmt.Sprintf(
		"MATCH (ref:Reference { title: $title })-[:IS_ABOUT]->(:%s { name: $from })",
		fromLabel) +
		" " + matchNamed("to", toLabel, "to") +
		" WHERE NOT EXISTS { (ref)-[:IS_ABOUT]->(to) }" +
		" MERGE (ref)-[:IS_ABOUT]->(to)" +
		" RETURN ref.title AS title, to.name AS to"
}

func getReferencesCypher(aboutLabel domain.Label) string {
	return fmt.Sprintf(
		"MATCH (ref:Reference)-[:IS_ABOUT]->(:%s { name: $about })"+
			" RETURN ref.title AS title, ref.url AS url ORDER BY title",
		aboutLabel)
}

func deleteReferenceCypher(aboutLabel domain.Label) string {
	return fmt.Sprintf(
		"MATCH (ref:Reference { title: $title })-[:IS_ABOUT]->(:%s { name: $about })"+
			" DETACH DELETE ref",
		aboutLabel)
}

func detachReferenceCypher(aboutLabel domain.Label) string {
	return fmt.Sprintf(
		"MATCH (:Reference { title: $title })-[rel:IS_ABOUT]->(:%s { name: $about })"+
			" DELETE rel",
		aboutLabel)
}

func descendantsCypher(label domain.Label) string {
	return fmt.Sprintf(
		"MATCH (branch:Branch)-[:BELONGS_TO*]->(:%s { name: $name })"+
			" RETURN DISTINCT branch.name AS name, branch.note AS note ORDER BY name",
		label)
}

func ancestorsCypher(label domain.Label) string {
	return fmt.Sprintf(
		"MATCH (:%s { name: $name })-[:BELONGS_TO*]->(ancestor)"+
			" RETURN DISTINCT head(labels(ancestor)) AS label, ancestor.name AS name ORDER BY name",
		label)
}
