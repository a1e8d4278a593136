/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package decl

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/meta"
)

// Render encodes d in the canonical file layout. Cases without metadata use
// the short forms.
func Render(d *Declaration) ([]byte, error) {
	root := mapping()
	addPair(root, scalar("name"), scalar(d.Name))
	if d.Kind != apis.Pure {
		addPair(root, scalar("backed"), scalar(d.Kind.String()))
	}
	if len(d.Meta) > 0 {
		m, err := metaNode(d.Meta)
		if err != nil {
			return nil, err
		}
		addPair(root, scalar("meta"), m)
	}

	cases := &yaml.Node{Kind: yaml.SequenceNode}
	for _, c := range d.Cases {
		n, err := caseNode(c)
		if err != nil {
			return nil, err
		}
		cases.Content = append(cases.Content, n)
	}
	addPair(root, scalar("cases"), cases)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func caseNode(c Case) (*yaml.Node, error) {
	if len(c.Meta) == 0 {
		if !c.HasValue {
			return scalar(c.Name), nil
		}
		v, err := valueNode(c.Value)
		if err != nil {
			return nil, err
		}
		n := mapping()
		addPair(n, scalar(c.Name), v)
		return n, nil
	}

	n := mapping()
	addPair(n, scalar("name"), scalar(c.Name))
	if c.HasValue {
		v, err := valueNode(c.Value)
		if err != nil {
			return nil, err
		}
		addPair(n, scalar("value"), v)
	}
	m, err := metaNode(c.Meta)
	if err != nil {
		return nil, err
	}
	addPair(n, scalar("meta"), m)
	return n, nil
}

// metaNode renders one store as a mapping and several as a list.
func metaNode(stores []*meta.Store) (*yaml.Node, error) {
	nodes := make([]*yaml.Node, 0, len(stores))
	for _, s := range stores {
		m := mapping()
		var err error
		s.Each(func(name string, value any) bool {
			var v *yaml.Node
			if v, err = valueNode(value); err != nil {
				return false
			}
			addPair(m, scalar(name), v)
			return true
		})
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, m)
	}
	if len(nodes) == 1 {
		return nodes[0], nil
	}
	return &yaml.Node{Kind: yaml.SequenceNode, Content: nodes}, nil
}

func valueNode(v any) (*yaml.Node, error) {
	n := &yaml.Node{}
	if err := n.Encode(v); err != nil {
		return nil, err
	}
	return n, nil
}

func mapping() *yaml.Node { return &yaml.Node{Kind: yaml.MappingNode} }

func scalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func addPair(m, k, v *yaml.Node) { m.Content = append(m.Content, k, v) }
