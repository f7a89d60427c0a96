package params

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/adammck/biped/gait"
)

const (

	// Environment variables with this prefix override the file, e.g.
	// BIPED_SAMPLE_TIME=0.002.
	envPrefix = "biped"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "params",
})

// Values are the gait constants, as read from a file. Angles are in degrees,
// lengths in meters and times in seconds.
type Values struct {
	MaxHipFlexion            float64 `mapstructure:"max_hip_flexion" yaml:"max_hip_flexion"`
	MaxHipFlexionTimePortion float64 `mapstructure:"max_hip_flexion_time_portion" yaml:"max_hip_flexion_time_portion"`
	HipSwingStart            float64 `mapstructure:"hip_swing_start" yaml:"hip_swing_start"`
	StepRange                float64 `mapstructure:"step_range" yaml:"step_range"`
	LegLength                float64 `mapstructure:"leg_length" yaml:"leg_length"`
	MaxKneeFlexion           float64 `mapstructure:"max_knee_flexion" yaml:"max_knee_flexion"`
	SecondKneeFlexion        float64 `mapstructure:"second_knee_flexion" yaml:"second_knee_flexion"`
	MinKneeFlexion           float64 `mapstructure:"min_knee_flexion" yaml:"min_knee_flexion"`
	WalkingAngle             float64 `mapstructure:"walking_angle" yaml:"walking_angle"`
	SampleTime               float64 `mapstructure:"sample_time" yaml:"sample_time"`
	HalfStepTime             float64 `mapstructure:"half_step_time" yaml:"half_step_time"`
}

// Reference returns the parameters of the reference walker: a 1.1m leg taking
// 0.78m steps, sampled at 1kHz, with a one second half step.
func Reference() Values {
	return Values{
		MaxHipFlexion:            36,
		MaxHipFlexionTimePortion: 0.4,
		HipSwingStart:            -6.934,
		StepRange:                0.78,
		LegLength:                1.1,
		MaxKneeFlexion:           60,
		SecondKneeFlexion:        15,
		MinKneeFlexion:           2,
		WalkingAngle:             0,
		SampleTime:               0.001,
		HalfStepTime:             1,
	}
}

// Set is a resolved set of parameters. It implements gait.Parameters.
type Set struct {
	v Values
}

var _ gait.Parameters = (*Set)(nil)

// New wraps the given values.
func New(v Values) *Set {
	return &Set{v: v}
}

// Load resolves the parameters from (in increasing priority) the reference
// values, the YAML file at path (if path isn't empty), and the environment.
func Load(path string) (*Set, error) {
	v := viper.New()

	defaults := map[string]interface{}{}
	if err := decode(Reference(), &defaults); err != nil {
		return nil, err
	}

	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading params from %s", path)
		}

		log.Infof("loaded params from %s", v.ConfigFileUsed())
	}

	var vals Values
	if err := v.Unmarshal(&vals); err != nil {
		return nil, errors.Wrap(err, "decoding params")
	}

	return New(vals), nil
}

// decode round-trips the values through YAML, to get them keyed by the same
// names that the file uses.
func decode(in Values, out *map[string]interface{}) error {
	b, err := yaml.Marshal(in)
	if err != nil {
		return errors.Wrap(err, "encoding params")
	}

	return errors.Wrap(yaml.Unmarshal(b, out), "decoding params")
}

// Values returns a copy of the resolved values.
func (s *Set) Values() Values {
	return s.v
}

// YAML renders the resolved values, in the same format that Load reads.
func (s *Set) YAML() ([]byte, error) {
	b, err := yaml.Marshal(s.v)
	if err != nil {
		return nil, errors.Wrap(err, "encoding params")
	}

	return b, nil
}

func (s *Set) MaxHipFlexion() float64            { return s.v.MaxHipFlexion }
func (s *Set) MaxHipFlexionTimePortion() float64 { return s.v.MaxHipFlexionTimePortion }
func (s *Set) HipSwingStart() float64            { return s.v.HipSwingStart }
func (s *Set) StepRange() float64                { return s.v.StepRange }
func (s *Set) LegLength() float64                { return s.v.LegLength }
func (s *Set) MaxKneeFlexion() float64           { return s.v.MaxKneeFlexion }
func (s *Set) SecondKneeFlexion() float64        { return s.v.SecondKneeFlexion }
func (s *Set) MinKneeFlexion() float64           { return s.v.MinKneeFlexion }
func (s *Set) WalkingAngle() float64             { return s.v.WalkingAngle }
func (s *Set) SampleTime() float64               { return s.v.SampleTime }
func (s *Set) HalfStepTime() float64             { return s.v.HalfStepTime }
