// Package scenefile reads scene documents: the objects to place on a canvas
// and a script of navigation steps to replay on it.
package scenefile

import (
	"errors"
	"fmt"
	"io"

	"github.com/ddvk/groupnav/scene"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var ErrUnknownAction = errors.New("unknown action")
var ErrMissingTarget = errors.New("missing target")

type Action string

const (
	ActionDoubleClick Action = "dblclick"
	ActionEnter       Action = "enter"
	ActionBack        Action = "back"
	ActionRoot        Action = "root"
)

type File struct {
	Objects []ObjectSpec `yaml:"objects"`
	Script  []Step       `yaml:"script"`
}

// ObjectSpec describes a shape or a group. Coordinates are canvas
// coordinates; a group's position is derived from its children.
type ObjectSpec struct {
	Name    string       `yaml:"name"`
	Type    string       `yaml:"type"`
	Left    float64      `yaml:"left"`
	Top     float64      `yaml:"top"`
	Width   float64      `yaml:"width"`
	Height  float64      `yaml:"height"`
	Objects []ObjectSpec `yaml:"objects,omitempty"`
}

// Step is one scripted interaction. An empty dblclick target is a click on
// the empty canvas.
type Step struct {
	Action Action `yaml:"action"`
	Target string `yaml:"target,omitempty"`
}

func (s Step) String() string {
	if s.Target == "" {
		return string(s.Action)
	}
	return fmt.Sprintf("%s %s", s.Action, s.Target)
}

func Load(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("decoding scene: %w", err)
	}
	for i, s := range f.Script {
		switch s.Action {
		case ActionDoubleClick, ActionBack, ActionRoot:
		case ActionEnter:
			if s.Target == "" {
				return nil, fmt.Errorf("step %d: %w for %s", i, ErrMissingTarget, s.Action)
			}
		default:
			return nil, fmt.Errorf("step %d: %w %q", i, ErrUnknownAction, s.Action)
		}
	}
	log.Debugf("loaded %d objects, %d steps", len(f.Objects), len(f.Script))
	return &f, nil
}

// Build places the described objects on c.
func (f *File) Build(c *scene.Canvas) error {
	for _, spec := range f.Objects {
		obj, err := spec.build()
		if err != nil {
			return err
		}
		if err = c.Add(obj); err != nil {
			return err
		}
	}
	return nil
}

func (spec ObjectSpec) build() (scene.Object, error) {
	typ, err := scene.ParseObjectType(spec.Type)
	if err != nil {
		return nil, fmt.Errorf("object %q: %w", spec.Name, err)
	}
	switch typ {
	case scene.GroupType:
		children := make([]scene.Object, 0, len(spec.Objects))
		for _, child := range spec.Objects {
			obj, err := child.build()
			if err != nil {
				return nil, err
			}
			children = append(children, obj)
		}
		g, err := scene.NewGroup(spec.Name, children...)
		if err != nil {
			return nil, fmt.Errorf("object %q: %w", spec.Name, err)
		}
		return g, nil
	case scene.RectType, scene.EllipseType, scene.PathType:
		if len(spec.Objects) > 0 {
			return nil, fmt.Errorf("object %q: %v cannot have children", spec.Name, typ)
		}
		return scene.NewShape(typ, spec.Name, spec.Left, spec.Top, spec.Width, spec.Height), nil
	}
	return nil, fmt.Errorf("object %q: %v cannot be placed from a scene file", spec.Name, typ)
}
