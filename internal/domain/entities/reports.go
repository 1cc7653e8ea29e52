package entities

// DownloadReport counts what a download wrote to the local mirror.
type DownloadReport struct {
	Files       int
	Directories int
	Skipped     int
	Bytes       int64
}

// UploadReport counts what an upload sent to the repository.
type UploadReport struct {
	Uploaded       int
	Skipped        int
	CreatedFolders int
	Bytes          int64
}

// QueryReport summarises a query run.
type QueryReport struct {
	Rows     int
	Download DownloadReport
}
