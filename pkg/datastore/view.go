package datastore

// view resolves every path under a base prefix. It is pure address
// composition over the owning store: no subtree is copied, writes land in
// the owner, and the owner's listeners observe them.
type view struct {
	owner *DataStore
	base  string
}

func (v view) resolve(path string) string {
	return joinPaths(v.base, path)
}

func (v view) GetString(path string) (string, bool) {
	return v.owner.GetString(v.resolve(path))
}

func (v view) GetNumber(path string) (float64, bool) {
	return v.owner.GetNumber(v.resolve(path))
}

func (v view) GetBoolean(path string) (bool, bool) {
	return v.owner.GetBoolean(v.resolve(path))
}

func (v view) GetStringList(path string) ([]string, bool) {
	return v.owner.GetStringList(v.resolve(path))
}

func (v view) GetArraySize(path string) (int, bool) {
	return v.owner.GetArraySize(v.resolve(path))
}

func (v view) GetObjectKeys(path string) ([]string, bool) {
	return v.owner.GetObjectKeys(v.resolve(path))
}

func (v view) Update(path string, value any) error {
	return v.owner.Update(v.resolve(path), value)
}

func (v view) WithBasePath(base string) Store {
	return view{owner: v.owner, base: joinPaths(v.base, base)}
}
