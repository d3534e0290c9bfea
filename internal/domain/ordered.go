package domain

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Los resultados se serializan como objetos cuyo orden de claves es el de las
// tablas estaticas (dimensiones y rasgos), no el orden alfabetico de un map.

type orderedEntry struct {
	key   string
	value any
}

func marshalOrderedJSON(entries []orderedEntry) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(e.value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func marshalOrderedYAML(entries []orderedEntry) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range entries {
		value := &yaml.Node{}
		if err := value.Encode(e.value); err != nil {
			return nil, err
		}
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.key}
		node.Content = append(node.Content, key, value)
	}
	return node, nil
}

// DimensionScore es el puntaje normalizado (0-100) de una dimension.
type DimensionScore struct {
	Dimension string
	Score     float64
}

// DimensionScores se serializa como {"E/I": 12.5, ...} en orden de dimension.
type DimensionScores []DimensionScore

// Get devuelve el puntaje de la dimension indicada.
func (s DimensionScores) Get(code string) (float64, bool) {
	for _, ds := range s {
		if ds.Dimension == code {
			return ds.Score, true
		}
	}
	return 0, false
}

func (s DimensionScores) entries() []orderedEntry {
	out := make([]orderedEntry, 0, len(s))
	for _, ds := range s {
		out = append(out, orderedEntry{key: ds.Dimension, value: ds.Score})
	}
	return out
}

func (s DimensionScores) MarshalJSON() ([]byte, error) { return marshalOrderedJSON(s.entries()) }

func (s DimensionScores) MarshalYAML() (interface{}, error) { return marshalOrderedYAML(s.entries()) }

// DimensionPreference asocia una Preference a su dimension.
type DimensionPreference struct {
	Dimension string
	Preference
}

// Preferences se serializa como {"E/I": {...}, ...} en orden de dimension.
type Preferences []DimensionPreference

// Get devuelve la preferencia de la dimension indicada.
func (p Preferences) Get(code string) (Preference, bool) {
	for _, dp := range p {
		if dp.Dimension == code {
			return dp.Preference, true
		}
	}
	return Preference{}, false
}

func (p Preferences) entries() []orderedEntry {
	out := make([]orderedEntry, 0, len(p))
	for _, dp := range p {
		out = append(out, orderedEntry{key: dp.Dimension, value: dp.Preference})
	}
	return out
}

func (p Preferences) MarshalJSON() ([]byte, error) { return marshalOrderedJSON(p.entries()) }

func (p Preferences) MarshalYAML() (interface{}, error) { return marshalOrderedYAML(p.entries()) }

// TraitScore es un rasgo con su valor de desarrollo. Solo, se serializa como el par [rasgo, valor].
type TraitScore struct {
	Trait string
	Value float64
}

func (t TraitScore) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{t.Trait, t.Value})
}

func (t TraitScore) MarshalYAML() (interface{}, error) {
	return []any{t.Trait, t.Value}, nil
}

// TraitDevelopment conserva el orden de insercion de la tabla de pesos del tipo.
type TraitDevelopment []TraitScore

// Get devuelve el desarrollo del rasgo indicado.
func (d TraitDevelopment) Get(trait string) (float64, bool) {
	for _, ts := range d {
		if ts.Trait == trait {
			return ts.Value, true
		}
	}
	return 0, false
}

func (d TraitDevelopment) entries() []orderedEntry {
	out := make([]orderedEntry, 0, len(d))
	for _, ts := range d {
		out = append(out, orderedEntry{key: ts.Trait, value: ts.Value})
	}
	return out
}

func (d TraitDevelopment) MarshalJSON() ([]byte, error) { return marshalOrderedJSON(d.entries()) }

func (d TraitDevelopment) MarshalYAML() (interface{}, error) { return marshalOrderedYAML(d.entries()) }
