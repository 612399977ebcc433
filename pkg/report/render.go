package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/numbfs/numbfs/pkg/numbfs"
	"gopkg.in/yaml.v2"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON, FormatYAML:
		return Format(s), nil
	}
	return "", fmt.Errorf(
		"parsing format: wanted `text`, `json`, or `yaml`; found `%s`",
		s,
	)
}

func (report *Report) Render(w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(report); err != nil {
			return fmt.Errorf("rendering json report: %w", err)
		}
		return nil
	case FormatYAML:
		if err := yaml.NewEncoder(w).Encode(report); err != nil {
			return fmt.Errorf("rendering yaml report: %w", err)
		}
		return nil
	default:
		return report.renderText(w)
	}
}

// renderText mimics the layout of the original statistics tool.
func (report *Report) renderText(w io.Writer) error {
	sb := &report.Superblock
	if _, err := fmt.Fprintf(
		w,
		"Superblock Information\n"+
			"    inode bitmap start:         %d\n"+
			"    inode zone start:           %d\n"+
			"    block bitmap start:         %d\n"+
			"    data zone start:            %d\n"+
			"    free inodes:                %d\n"+
			"    total inodes:               %d\n"+
			"    total free blocks:          %d\n"+
			"    total data blocks:          %d\n",
		sb.InodeBitmapStart,
		sb.InodeStart,
		sb.BlockBitmapStart,
		sb.DataStart,
		sb.FreeInodes,
		sb.TotalInodes,
		sb.FreeBlocks,
		sb.DataBlocks,
	); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}

	if report.InodeUsage != nil {
		if _, err := fmt.Fprintf(
			w,
			"    inodes usage:               %.2f%%\n",
			report.InodeUsage.Percent,
		); err != nil {
			return fmt.Errorf("rendering report: %w", err)
		}
	}

	if report.BlockUsage != nil {
		if _, err := fmt.Fprintf(
			w,
			"    blocks usage:               %.2f%%\n",
			report.BlockUsage.Percent,
		); err != nil {
			return fmt.Errorf("rendering report: %w", err)
		}
	}

	if report.Inode != nil {
		if err := report.Inode.renderText(w); err != nil {
			return fmt.Errorf("rendering report: %w", err)
		}
	}

	return nil
}

func (inode *Inode) renderText(w io.Writer) error {
	if _, err := fmt.Fprintf(
		w,
		"================================\n"+
			"Inode Information\n"+
			"    inode number:               %d\n"+
			"    inode type:                 %s\n"+
			"    link count:                 %d\n"+
			"    inode uid:                  %d\n"+
			"    inode gid:                  %d\n"+
			"    inode atime:                %s\n"+
			"    inode mtime:                %s\n"+
			"    inode ctime:                %s\n"+
			"    inode size:                 %d\n",
		inode.Nid,
		inode.Type,
		inode.LinkCount,
		inode.UID,
		inode.GID,
		inode.ATime,
		inode.MTime,
		inode.CTime,
		inode.Size,
	); err != nil {
		return err
	}

	if len(inode.Xattrs) > 0 {
		if _, err := fmt.Fprintf(
			w,
			"    -------\n    xattrs (count: %d)\n",
			len(inode.Xattrs),
		); err != nil {
			return err
		}
		for i := range inode.Xattrs {
			// Fixed-width columns padded with spaces; the padding never
			// comes from undefined on-disk bytes.
			if _, err := fmt.Fprintf(
				w,
				"        type: %02d, name: %-*s, value: %-*s\n",
				inode.Xattrs[i].Type,
				numbfs.MaxXattrName-1,
				inode.Xattrs[i].Name,
				numbfs.MaxXattrValue-1,
				inode.Xattrs[i].Value,
			); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "    -------\n"); err != nil {
			return err
		}
	}

	if inode.Type == "DIR" {
		if _, err := fmt.Fprintf(w, "\n    DIR CONTENT\n"); err != nil {
			return err
		}
		for i := range inode.Entries {
			if _, err := fmt.Fprintf(
				w,
				"       INODE: %05d, TYPE: %-7s, NAMELEN: %02d NAME: %s\n",
				inode.Entries[i].Nid,
				inode.Entries[i].Type,
				inode.Entries[i].NameLen,
				inode.Entries[i].Name,
			); err != nil {
				return err
			}
		}
	}

	return nil
}
