package engine

import "sceneplace/pkg/placement"

// Scene is a flat collection of GameObjects with O(1) lookup by UID.
// It implements placement.SceneView.
type Scene struct {
	Name        string
	GameObjects []*GameObject
	uidMap      map[string]*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:   name,
		uidMap: make(map[string]*GameObject),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	if s.uidMap == nil {
		s.uidMap = make(map[string]*GameObject)
	}
	s.GameObjects = append(s.GameObjects, g)
	s.uidMap[g.UID] = g
}

func (s *Scene) RemoveGameObject(g *GameObject) {
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			delete(s.uidMap, g.UID)
			return
		}
	}
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

// ObjectByID returns nil when no object has the given id.
func (s *Scene) ObjectByID(id string) placement.Object {
	if g, ok := s.uidMap[id]; ok {
		return g
	}
	return nil
}

func (s *Scene) Objects() []placement.Object {
	out := make([]placement.Object, len(s.GameObjects))
	for i, g := range s.GameObjects {
		out[i] = g
	}
	return out
}

var _ placement.SceneView = (*Scene)(nil)
