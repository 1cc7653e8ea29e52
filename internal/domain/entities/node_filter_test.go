//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/cmistools/internal/domain/entities"
	"github.com/rios0rios0/cmistools/test/domain/entitybuilders"
)

func mixedNodes() []entities.Node {
	builder := entitybuilders.NewNodeBuilder()
	return []entities.Node{
		builder.WithID("d1").WithName("one.txt").AsDocument().BuildNode(),
		builder.WithID("f1").WithName("sub").AsFolder("/sub").BuildNode(),
		builder.WithID("p1").WithName("policy").WithBaseTypeID("cmis:policy").BuildNode(),
		builder.WithID("d2").WithName("two.txt").AsDocument().BuildNode(),
		builder.WithID("x1").WithName("untyped").WithBaseTypeID("").BuildNode(),
	}
}

func ids(nodes []entities.Node) []string {
	result := make([]string, 0, len(nodes))
	for _, node := range nodes {
		result = append(result, node.ID)
	}
	return result
}

func TestFilterByBaseType(t *testing.T) {
	t.Parallel()

	t.Run("should keep only documents in input order", func(t *testing.T) {
		t.Parallel()

		// given
		nodes := mixedNodes()

		// when
		result := entities.FilterByBaseType(nodes, entities.BaseTypeDocument)

		// then
		assert.Equal(t, []string{"d1", "d2"}, ids(result))
	})

	t.Run("should keep only folders", func(t *testing.T) {
		t.Parallel()

		// given
		nodes := mixedNodes()

		// when
		result := entities.FilterByBaseType(nodes, entities.BaseTypeFolder)

		// then
		assert.Equal(t, []string{"f1"}, ids(result))
	})

	t.Run("should match nodes without a known base type only as other", func(t *testing.T) {
		t.Parallel()

		// given
		nodes := mixedNodes()

		// when
		result := entities.FilterByBaseType(nodes, entities.BaseTypeOther)

		// then
		assert.Equal(t, []string{"p1", "x1"}, ids(result))
	})

	t.Run("should return an empty slice for empty input", func(t *testing.T) {
		t.Parallel()

		// given
		var nodes []entities.Node

		// when
		result := entities.FilterByBaseType(nodes, entities.BaseTypeDocument)

		// then
		assert.Empty(t, result)
	})
}

func TestPartitionByBaseType(t *testing.T) {
	t.Parallel()

	t.Run("should split nodes into documents, folders and the rest", func(t *testing.T) {
		t.Parallel()

		// given
		nodes := mixedNodes()

		// when
		documents, folders, others := entities.PartitionByBaseType(nodes)

		// then
		assert.Equal(t, []string{"d1", "d2"}, ids(documents))
		assert.Equal(t, []string{"f1"}, ids(folders))
		assert.Equal(t, []string{"p1", "x1"}, ids(others))
	})
}
