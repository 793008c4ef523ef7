// Command fat12 inspects the root directory of FAT12 disk images.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/aligator/fat12"
	"github.com/golang/glog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Exit codes, one per failed stage.
const (
	exitOK = iota
	exitUsage
	exitBootSector
	exitFAT
	exitRootDirectory
	exitNotFound
)

type options struct {
	raw      bool
	standard bool
	all      bool
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "fat12",
		Short:         "Read the root directory of FAT12 disk images",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// glog complains about logging before flag.Parse otherwise.
			return flag.CommandLine.Parse(nil)
		},
	}
	root.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	find := &cobra.Command{
		Use:   "find <disk image> <file name>",
		Short: "Locate the root directory entry of a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(cmd.OutOrStdout(), fs, args[0], args[1], opts)
		},
	}
	find.Flags().BoolVar(&opts.raw, "raw", false, "the file name is already in the 11 byte on-disk form, e.g. \"FILE    TXT\"")
	find.Flags().BoolVar(&opts.standard, "standard", false, "stop at the end of directory marker and skip deleted entries")

	ls := &cobra.Command{
		Use:   "ls <disk image>",
		Short: "List the root directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.OutOrStdout(), fs, args[0], opts)
		},
	}
	ls.Flags().BoolVarP(&opts.all, "all", "a", false, "also list deleted and free slots")

	info := &cobra.Command{
		Use:   "info <disk image>",
		Short: "Print the boot sector",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd.OutOrStdout(), fs, args[0])
		},
	}

	root.AddCommand(find, ls, info)
	return root
}

func runFind(out io.Writer, fs afero.Fs, image, name string, opts *options) error {
	lookup := fat12.ShortName
	if opts.raw {
		lookup = fat12.RawName
	}
	key, err := lookup(name)
	if err != nil {
		return err
	}

	s, err := fat12.OpenImage(fs, image, fat12.Options{StandardLookup: opts.standard})
	if err != nil {
		return err
	}
	defer s.Close()

	entry, err := s.Find(key)
	if err != nil {
		return fmt.Errorf("could not find file %s: %w", name, err)
	}

	w := tabwriter.NewWriter(out, 0, 4, 1, ' ', 0)
	fmt.Fprintf(w, "Name:\t%s\n", entry.DisplayName())
	fmt.Fprintf(w, "Size:\t%d\n", entry.Size)
	fmt.Fprintf(w, "Attributes:\t%s\n", attributeString(entry.Attributes))
	fmt.Fprintf(w, "First cluster:\t%d\n", entry.FirstCluster())
	fmt.Fprintf(w, "Created:\t%s\n", formatTime(entry.CreatedAt()))
	fmt.Fprintf(w, "Modified:\t%s\n", formatTime(entry.ModTime()))
	fmt.Fprintf(w, "Accessed:\t%s\n", formatDate(entry.AccessedAt()))
	return w.Flush()
}

func runList(out io.Writer, fs afero.Fs, image string, opts *options) error {
	s, err := fat12.OpenImage(fs, image, fat12.Options{})
	if err != nil {
		return err
	}
	defer s.Close()

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	printEntry := func(slot int, e *fat12.DirectoryEntry) {
		fmt.Fprintf(w, "%d\t%q\t%s\t%d\t%s\n", slot, string(e.Name[:]), attributeString(e.Attributes), e.Size, formatTime(e.ModTime()))
	}

	if opts.all {
		entries := s.RootDirectory().Entries()
		for i := range entries {
			printEntry(i, &entries[i])
		}
		return w.Flush()
	}

	slot := 0
	entries := s.RootDirectory().Entries()
	s.RootDirectory().Walk(func(e *fat12.DirectoryEntry) bool {
		for &entries[slot] != e {
			slot++
		}
		if !e.IsLongName() {
			printEntry(slot, e)
		}
		return true
	})
	return w.Flush()
}

func runInfo(out io.Writer, fs afero.Fs, image string) error {
	s, err := fat12.OpenImage(fs, image, fat12.Options{})
	if err != nil {
		return err
	}
	defer s.Close()

	bs := s.BootSector()
	w := tabwriter.NewWriter(out, 0, 4, 1, ' ', 0)
	fmt.Fprintf(w, "OEM:\t%s\n", bs.OEMName())
	fmt.Fprintf(w, "Volume label:\t%s\n", bs.Label())
	fmt.Fprintf(w, "Volume ID:\t%08X\n", bs.VolumeID)
	fmt.Fprintf(w, "File system:\t%s\n", bs.FileSystemType())
	fmt.Fprintf(w, "Bytes per sector:\t%d\n", bs.BytesPerSector)
	fmt.Fprintf(w, "Sectors per cluster:\t%d\n", bs.SectorsPerCluster)
	fmt.Fprintf(w, "Reserved sectors:\t%d\n", bs.ReservedSectors)
	fmt.Fprintf(w, "FAT copies:\t%d\n", bs.FATCount)
	fmt.Fprintf(w, "Sectors per FAT:\t%d\n", bs.SectorsPerFAT)
	fmt.Fprintf(w, "Root entries:\t%d\n", bs.DirEntryCount)
	fmt.Fprintf(w, "Root directory:\tlba %d, %d sectors\n", bs.RootDirectoryLBA(), bs.RootDirectorySectors())
	fmt.Fprintf(w, "Total sectors:\t%d\n", bs.TotalSectors())
	return w.Flush()
}

func attributeString(attr byte) string {
	flags := []struct {
		bit  byte
		char byte
	}{
		{fat12.AttrReadOnly, 'R'},
		{fat12.AttrHidden, 'H'},
		{fat12.AttrSystem, 'S'},
		{fat12.AttrVolumeID, 'V'},
		{fat12.AttrDirectory, 'D'},
		{fat12.AttrArchive, 'A'},
	}

	b := make([]byte, len(flags))
	for i, f := range flags {
		b[i] = '-'
		if attr&f.bit == f.bit {
			b[i] = f.char
		}
	}
	return string(b)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04:05")
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}

// exitCode maps the failed stage to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, fat12.ErrReadBootSector):
		return exitBootSector
	case errors.Is(err, fat12.ErrReadFAT):
		return exitFAT
	case errors.Is(err, fat12.ErrReadRootDirectory):
		return exitRootDirectory
	case errors.Is(err, fat12.ErrNotFound):
		return exitNotFound
	default:
		return exitUsage
	}
}

func run(args []string, stdout, stderr io.Writer, fs afero.Fs) int {
	cmd := newRootCmd(fs)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
	}
	return exitCode(err)
}

func main() {
	code := run(os.Args[1:], os.Stdout, os.Stderr, afero.NewOsFs())
	glog.Flush()
	os.Exit(code)
}
