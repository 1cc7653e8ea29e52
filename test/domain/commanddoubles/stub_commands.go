//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/cmistools/internal/domain/commands"
	"github.com/rios0rios0/cmistools/internal/domain/entities"
)

// StubDownloadCommand is a stub implementation of commands.Download.
type StubDownloadCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Report           *entities.DownloadReport
	LastOpts         commands.DownloadOptions
}

var _ commands.Download = (*StubDownloadCommand)(nil)

func (s *StubDownloadCommand) Execute(
	_ context.Context,
	opts commands.DownloadOptions,
) (*entities.DownloadReport, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Report, s.ExecuteErr
}

// StubListCommand is a stub implementation of commands.List.
type StubListCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Listing          string // written to opts.Output
	LastOpts         commands.ListOptions
}

var _ commands.List = (*StubListCommand)(nil)

func (s *StubListCommand) Execute(_ context.Context, opts commands.ListOptions) error {
	s.ExecuteCallCount++
	s.LastOpts = opts
	if s.Listing != "" && opts.Output != nil {
		_, _ = opts.Output.Write([]byte(s.Listing))
	}
	return s.ExecuteErr
}

// StubQueryCommand is a stub implementation of commands.Query.
type StubQueryCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Report           *entities.QueryReport
	LastOpts         commands.QueryOptions
}

var _ commands.Query = (*StubQueryCommand)(nil)

func (s *StubQueryCommand) Execute(
	_ context.Context,
	opts commands.QueryOptions,
) (*entities.QueryReport, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Report, s.ExecuteErr
}

// StubUploadCommand is a stub implementation of commands.Upload.
type StubUploadCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Report           *entities.UploadReport
	LastOpts         commands.UploadOptions
}

var _ commands.Upload = (*StubUploadCommand)(nil)

func (s *StubUploadCommand) Execute(
	_ context.Context,
	opts commands.UploadOptions,
) (*entities.UploadReport, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Report, s.ExecuteErr
}
