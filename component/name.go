package component

// NameComponent identifies an entity inside a loaded scene
type NameComponent struct {
	Scene string
	Name  string
}
