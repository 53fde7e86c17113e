package models

// GitChange is one entry from `git status --porcelain`.
type GitChange struct {
	Path   string
	Status string
}

// CommitResult reports the outcome of creating a commit.
type CommitResult struct {
	Hash    string
	Message string
}
