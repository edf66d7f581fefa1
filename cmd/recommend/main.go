package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/strataleap/readiness-backend/internal/catalog"
	"github.com/strataleap/readiness-backend/internal/domain/assessment"
	"github.com/strataleap/readiness-backend/internal/modules/recommendation"
	"github.com/strataleap/readiness-backend/internal/platform/envutil"
	"github.com/strataleap/readiness-backend/internal/platform/logger"
)

// assessmentFile is the YAML shape accepted by -input.
type assessmentFile struct {
	Scores struct {
		StrategicAuthority      float64 `yaml:"strategic_authority"`
		OrganizationalInfluence float64 `yaml:"organizational_influence"`
		ResourceAvailability    float64 `yaml:"resource_availability"`
		ImplementationReadiness float64 `yaml:"implementation_readiness"`
		CulturalAlignment       float64 `yaml:"cultural_alignment"`
	} `yaml:"scores"`
	Industry         string   `yaml:"industry"`
	CulturalContexts []string `yaml:"cultural_contexts"`
	Preferences      struct {
		TimeCommitment float64  `yaml:"time_commitment"`
		Urgency        string   `yaml:"urgency"`
		FocusAreas     []string `yaml:"focus_areas"`
		LearningStyle  string   `yaml:"learning_style"`
	} `yaml:"preferences"`
}

type fileList []string

func (l *fileList) String() string { return strings.Join(*l, ",") }
func (l *fileList) Set(v string) error {
	v = strings.TrimSpace(v)
	if v != "" {
		*l = append(*l, v)
	}
	return nil
}

func main() {
	var inputs fileList
	var pretty bool
	flag.Var(&inputs, "input", "assessment YAML file (repeatable)")
	flag.BoolVar(&pretty, "pretty", false, "indent JSON output")
	flag.Parse()

	if len(inputs) == 0 {
		fmt.Println("at least one -input file is required")
		os.Exit(1)
	}

	log, err := logger.New(envutil.String("LOG_MODE", "dev"))
	if err != nil {
		fmt.Printf("init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	cat, err := loadCatalog()
	if err != nil {
		fmt.Printf("load catalog: %v\n", err)
		os.Exit(1)
	}

	uc := recommendation.New(recommendation.UsecasesDeps{
		Log:     log,
		Catalog: cat,
	})

	ins := make([]recommendation.GenerateCurriculumInput, 0, len(inputs))
	for _, path := range inputs {
		in, err := readAssessment(path)
		if err != nil {
			fmt.Printf("read %s: %v\n", path, err)
			os.Exit(1)
		}
		ins = append(ins, in)
	}

	outs, err := uc.GenerateCurriculumBatch(context.Background(), ins)
	if err != nil {
		fmt.Printf("generate curriculum: %v\n", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	for _, out := range outs {
		if err := enc.Encode(out); err != nil {
			fmt.Printf("encode output: %v\n", err)
			os.Exit(1)
		}
	}
}

func loadCatalog() (*catalog.Catalog, error) {
	if path := envutil.String("CATALOG_FILE", ""); path != "" {
		return catalog.LoadFile(path)
	}
	return catalog.Default()
}

func readAssessment(path string) (recommendation.GenerateCurriculumInput, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return recommendation.GenerateCurriculumInput{}, err
	}
	var f assessmentFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return recommendation.GenerateCurriculumInput{}, err
	}
	return recommendation.GenerateCurriculumInput{
		Scores: assessment.DimensionScores{
			StrategicAuthority:      f.Scores.StrategicAuthority,
			OrganizationalInfluence: f.Scores.OrganizationalInfluence,
			ResourceAvailability:    f.Scores.ResourceAvailability,
			ImplementationReadiness: f.Scores.ImplementationReadiness,
			CulturalAlignment:       f.Scores.CulturalAlignment,
		},
		Industry:         f.Industry,
		CulturalContexts: f.CulturalContexts,
		Preferences: assessment.Preferences{
			TimeCommitment: f.Preferences.TimeCommitment,
			Urgency:        f.Preferences.Urgency,
			FocusAreas:     f.Preferences.FocusAreas,
			LearningStyle:  f.Preferences.LearningStyle,
		},
	}, nil
}
