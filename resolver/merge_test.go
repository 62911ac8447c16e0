package resolver

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestMerge(t *testing.T) {
	var testCases = []struct {
		description string
		input       []Map
		expect      Map
	}{
		{
			description: "no sources",
			expect:      Map{},
		},
		{
			description: "later source wins on leaf collision",
			input: []Map{
				{"Query": Map{"a": 1, "b": 2}},
				{"Query": Map{"b": 3, "c": 4}},
			},
			expect: Map{"Query": Map{"a": 1, "b": 3, "c": 4}},
		},
		{
			description: "nested mappings merge recursively",
			input: []Map{
				{"Query": Map{"a": Map{"x": 1}}},
				{"Query": Map{"a": Map{"y": 2}}},
			},
			expect: Map{"Query": Map{"a": Map{"x": 1, "y": 2}}},
		},
		{
			description: "slices are replaced wholesale",
			input: []Map{
				{"Query": Map{"tags": []interface{}{"a", "b"}}},
				{"Query": Map{"tags": []interface{}{"c"}}},
			},
			expect: Map{"Query": Map{"tags": []interface{}{"c"}}},
		},
		{
			description: "leaf replaces mapping",
			input: []Map{
				{"Query": Map{"a": Map{"x": 1}}},
				{"Query": Map{"a": "user"}},
			},
			expect: Map{"Query": Map{"a": "user"}},
		},
		{
			description: "mapping replaces leaf",
			input: []Map{
				{"Query": "user"},
				{"Query": Map{"a": 1}},
			},
			expect: Map{"Query": Map{"a": 1}},
		},
		{
			description: "decoder mappings are normalized",
			input: []Map{
				{"Query": map[string]interface{}{"a": 1}},
				{"Query": map[interface{}]interface{}{"b": 2}},
			},
			expect: Map{"Query": Map{"a": 1, "b": 2}},
		},
		{
			description: "disjoint types survive",
			input: []Map{
				{"Query": Map{"user": "getUser"}},
				{"Mutation": Map{"addUser": "addUser"}},
			},
			expect: Map{"Query": Map{"user": "getUser"}, "Mutation": Map{"addUser": "addUser"}},
		},
	}

	for _, testCase := range testCases {
		actual := Merge(testCase.input...)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestMerge_DoesNotAliasSources(t *testing.T) {
	first := Map{"Query": Map{"a": Map{"x": 1}}}
	second := Map{"Query": Map{"a": Map{"y": 2}}}
	merged := Merge(first, second)

	assert.EqualValues(t, Map{"Query": Map{"a": Map{"x": 1}}}, first)
	assert.EqualValues(t, Map{"Query": Map{"a": Map{"y": 2}}}, second)

	merged["Query"].(Map)["a"].(Map)["z"] = 3
	assert.EqualValues(t, Map{"Query": Map{"a": Map{"x": 1}}}, first)
}

func TestMerge_Idempotent(t *testing.T) {
	input := []Map{
		{"Query": Map{"a": 1, "b": Map{"x": 1}}},
		{"Query": Map{"b": Map{"y": 2}}, "Mutation": Map{"c": true}},
	}
	assert.EqualValues(t, Merge(input...), Merge(input...))
}

func TestMap_Lookup(t *testing.T) {
	m := Map{"Query": Map{"user": "getUser", "nested": map[string]interface{}{"x": 1}}}

	var testCases = []struct {
		description string
		path        []string
		expect      interface{}
		found       bool
	}{
		{description: "leaf", path: []string{"Query", "user"}, expect: "getUser", found: true},
		{description: "plain map child", path: []string{"Query", "nested", "x"}, expect: 1, found: true},
		{description: "missing", path: []string{"Mutation", "user"}},
		{description: "through leaf", path: []string{"Query", "user", "x"}},
		{description: "empty path"},
	}
	for _, testCase := range testCases {
		actual, ok := m.Lookup(testCase.path...)
		assert.Equal(t, testCase.found, ok, testCase.description)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestMap_Paths(t *testing.T) {
	m := Map{
		"Query":    Map{"user": "getUser", "users": "listUsers"},
		"Mutation": Map{"addUser": "addUser"},
		"Empty":    Map{},
	}
	assert.Equal(t, []string{"Empty", "Mutation.addUser", "Query.user", "Query.users"}, m.Paths())
}

func TestNormalize(t *testing.T) {
	input := map[interface{}]interface{}{"Query": map[interface{}]interface{}{"a": []interface{}{1}}}
	assert.EqualValues(t, Map{"Query": Map{"a": []interface{}{1}}}, Normalize(input))
	assert.Equal(t, 5, Normalize(5))
}
