package bwhost

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ServiceFiles lists the service file names looked up, in order.
var ServiceFiles = []string{"serverless.yml", "serverless.yaml", "serverless.json"}

// Service is the declarative service file.
type Service struct {
	Service   string                    `yaml:"service" json:"service" validate:"required"`
	Provider  ProviderConfig            `yaml:"provider" json:"provider"`
	Package   PackageConfig             `yaml:"package" json:"package"`
	Functions map[string]FunctionConfig `yaml:"functions" json:"functions" validate:"dive"`
}

// ProviderConfig is the provider section of the service file. Every field is
// optional.
type ProviderConfig struct {
	Name             string                  `yaml:"name" json:"name"`
	Stage            string                  `yaml:"stage" json:"stage"`
	Region           string                  `yaml:"region" json:"region"`
	Profile          string                  `yaml:"profile" json:"profile"`
	StackName        string                  `yaml:"stackName" json:"stackName" validate:"omitempty,max=128"`
	Tags             map[string]string       `yaml:"tags" json:"tags"`
	StackTags        map[string]string       `yaml:"stackTags" json:"stackTags"`
	DeploymentBucket *DeploymentBucketConfig `yaml:"deploymentBucket" json:"deploymentBucket"`
	CfnRole          string                  `yaml:"cfnRole" json:"cfnRole" validate:"omitempty,startswith=arn:"`
	DeploymentRole   string                  `yaml:"deploymentRole" json:"deploymentRole" validate:"omitempty,startswith=arn:"`
}

type DeploymentBucketConfig struct {
	Name string `yaml:"name" json:"name"`
}

type PackageConfig struct {
	Artifact string   `yaml:"artifact" json:"artifact"`
	Exclude  []string `yaml:"exclude" json:"exclude"`
}

type FunctionConfig struct {
	Handler string         `yaml:"handler" json:"handler"`
	Package *PackageConfig `yaml:"package" json:"package"`
}

// LoadService reads and validates a service file. YAML is assumed unless the
// file has a .json extension.
func LoadService(path string) (*Service, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	var svc Service
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &svc)
	} else {
		err = yaml.Unmarshal(data, &svc)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}

	if err := svc.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid %s", filepath.Base(path))
	}
	return &svc, nil
}

// Validate checks the service using its struct tags.
func (s *Service) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(s); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			msgs := make([]string, 0, len(validationErrs))
			for _, e := range validationErrs {
				msgs = append(msgs, formatValidationError(e))
			}
			return errors.Newf("service validation errors:\n  - %s", strings.Join(msgs, "\n  - "))
		}
		return errors.Wrap(err, "service validation failed")
	}
	return nil
}

// FindServiceFile walks up from dir until it finds one of ServiceFiles.
func FindServiceFile(dir string) (string, error) {
	for {
		for _, name := range ServiceFiles {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.Newf("could not find %s in any parent directory", ServiceFiles[0])
		}
		dir = parent
	}
}

func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Namespace())
	case "max":
		return fmt.Sprintf("%s exceeds maximum length of %s (got %q)", e.Namespace(), e.Param(), e.Value())
	case "startswith":
		return fmt.Sprintf("%s must be an ARN (got %q)", e.Namespace(), e.Value())
	default:
		return fmt.Sprintf("%s failed validation %q", e.Namespace(), e.Tag())
	}
}
