package main

import (
	"io"
	"os"

	"github.com/katalvlaran/starpath/galaxy"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type systemDoc struct {
	ID       string     `yaml:"id"`
	Position [3]float64 `yaml:"position,flow"`
}

type laneDoc struct {
	A        string  `yaml:"a"`
	B        string  `yaml:"b"`
	Distance float64 `yaml:"distance"`
}

type galaxyDoc struct {
	Seed    int64       `yaml:"seed"`
	Systems []systemDoc `yaml:"systems"`
	Lanes   []laneDoc   `yaml:"lanes"`
}

func newGenerateCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a galaxy and write it as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := a.galaxy()
			if err != nil {
				return err
			}

			if output == "" {
				return writeDoc(cmd.OutOrStdout(), toDoc(m, a.cfg.Galaxy.Seed))
			}

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := writeDoc(f, toDoc(m, a.cfg.Galaxy.Seed)); err != nil {
				_ = f.Close()
				return err
			}
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")

	return cmd
}

func writeDoc(w io.Writer, doc galaxyDoc) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

func toDoc(m *galaxy.Map, seed int64) galaxyDoc {
	doc := galaxyDoc{Seed: seed}
	for _, s := range m.Systems() {
		p := s.Position()
		doc.Systems = append(doc.Systems, systemDoc{ID: s.ID(), Position: [3]float64{p.X, p.Y, p.Z}})
	}
	for _, e := range m.Edges() {
		doc.Lanes = append(doc.Lanes, laneDoc{A: e.A.ID(), B: e.B.ID(), Distance: e.Distance})
	}

	return doc
}
