package entities

// RepositoryInfo describes the remote repository the commands are connected to.
type RepositoryInfo struct {
	ID              string
	Name            string
	Description     string
	ProductName     string
	ProductVersion  string
	CMISVersion     string
	RootFolderID    string
	QueryCapability string
}
