package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rios0rios0/cmistools/internal/domain/entities"
	"github.com/rios0rios0/cmistools/internal/domain/repositories"
)

// List is the interface for the list command.
type List interface {
	Execute(ctx context.Context, opts ListOptions) error
}

// ListOptions holds runtime options for a single listing.
type ListOptions struct {
	Connection     entities.ConnectionSettings
	FolderPath     string // remote path, "/" when empty
	ShowProperties bool
	Output         io.Writer
}

// ListCommand prints a remote folder subtree.
type ListCommand struct {
	connector repositories.Connector
}

// NewListCommand creates a new ListCommand.
func NewListCommand(connector repositories.Connector) *ListCommand {
	return &ListCommand{connector: connector}
}

// Execute connects, resolves the folder path and prints the subtree below it.
func (it *ListCommand) Execute(ctx context.Context, opts ListOptions) error {
	repo, err := connect(ctx, it.connector, opts.Connection)
	if err != nil {
		return err
	}

	folderPath := opts.FolderPath
	if folderPath == "" {
		folderPath = rootPath
	}

	folder, err := getObjectByPath(ctx, repo, folderPath)
	if err != nil {
		return err
	}
	if !folder.IsFolder() {
		return fmt.Errorf("%w: %s is a %s", entities.ErrNotAFolder, folderPath, folder.BaseTypeID)
	}

	printer := &folderPrinter{
		repo:           repo,
		output:         opts.Output,
		showProperties: opts.ShowProperties,
	}
	return printer.PrintFolder(ctx, *folder, folderPath)
}

type folderPrinter struct {
	repo           repositories.CMISRepository
	output         io.Writer
	showProperties bool
}

// PrintFolder prints the normalised path, then one line per child in listing
// order, then recurses into the sub-folders in the order they were listed.
func (it *folderPrinter) PrintFolder(ctx context.Context, folder entities.Node, pathSoFar string) error {
	path := NormalizeListingPath(pathSoFar)
	fmt.Fprintln(it.output, path)

	children, err := it.repo.GetChildren(ctx, folder)
	if err != nil {
		return fmt.Errorf("failed to list children of %q: %w", path, err)
	}

	var subFolders []entities.Node
	for _, child := range children {
		switch child.BaseType() {
		case entities.BaseTypeDocument:
			fmt.Fprintln(it.output, child.Name)
		case entities.BaseTypeFolder:
			fmt.Fprintln(it.output, child.Name+"/")
			subFolders = append(subFolders, child)
		default:
			fmt.Fprintf(it.output, "%s (%s)\n", child.Name, child.BaseTypeID)
		}

		if it.showProperties {
			printProperties(it.output, child.Properties)
		}
	}

	for _, subFolder := range subFolders {
		if printErr := it.PrintFolder(ctx, subFolder, path+subFolder.Name); printErr != nil {
			return printErr
		}
	}

	return nil
}

// NormalizeListingPath makes sure path ends in exactly one "/"; "" becomes "/".
func NormalizeListingPath(path string) string {
	return strings.TrimRight(path, "/") + "/"
}

func printProperties(output io.Writer, properties entities.Properties) {
	for _, key := range properties.Keys() {
		fmt.Fprintf(output, "  %s: %s\n", key, properties[key].String())
	}
}
