package repo

// Repo is a handle on a repository working directory.
type Repo struct {
	workdir string
}

// At wraps path without touching the filesystem.
func At(path string) Repo {
	return Repo{workdir: path}
}

// ContainingFile returns a Repo for the repository that contains path. Unless
// path is the repository root itself, parents are probed until a directory
// holding a .git directory is found.
func ContainingFile(path string) (Repo, error) {
	return NewLocator().ContainingFile(path)
}

// ContainingFile is like the package-level ContainingFile but probes l's filesystem.
func (l *Locator) ContainingFile(path string) (Repo, error) {
	root, err := l.FindRoot(path)
	if err != nil {
		return Repo{}, err
	}
	return Repo{workdir: root}, nil
}

// Workdir returns the working directory path.
func (r Repo) Workdir() string {
	return r.workdir
}

func (r Repo) String() string {
	return r.workdir
}
