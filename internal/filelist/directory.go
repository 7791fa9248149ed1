package filelist

// Directory is one parsed listing.
type Directory struct {
	Path        string
	Files       []string
	Directories []string
	FileCount   int
	DirCount    int
}

// Validate reports a Malformed error when the counts declared in the summary
// line disagree with the entries that were listed.
func (d Directory) Validate() error {
	if d.DirCount != len(d.Directories) {
		return malformed("summary declares %d directories but %d were listed", d.DirCount, len(d.Directories))
	}
	if d.FileCount != len(d.Files) {
		return malformed("summary declares %d files but %d were listed", d.FileCount, len(d.Files))
	}
	return nil
}

// Render returns the lines shown for a listing: directories first with a trailing
// separator, then files, each in server order.
func Render(d Directory) []string {
	lines := make([]string, 0, len(d.Directories)+len(d.Files))
	for _, dir := range d.Directories {
		lines = append(lines, dir+Separator)
	}
	return append(lines, d.Files...)
}
