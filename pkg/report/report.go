// Package report renders decoded filesystem state as human-readable text
// or as JSON/YAML documents.
package report

import (
	"fmt"
	"time"

	"github.com/numbfs/numbfs/pkg/numbfs"
)

type Report struct {
	Superblock Superblock `json:"superblock"          yaml:"superblock"`
	InodeUsage *Usage     `json:"inodeUsage,omitempty" yaml:"inodeUsage,omitempty"`
	BlockUsage *Usage     `json:"blockUsage,omitempty" yaml:"blockUsage,omitempty"`
	Inode      *Inode     `json:"inode,omitempty"      yaml:"inode,omitempty"`
}

type Superblock struct {
	InodeBitmapStart numbfs.Block `json:"inodeBitmapStart" yaml:"inodeBitmapStart"`
	InodeStart       numbfs.Block `json:"inodeStart"       yaml:"inodeStart"`
	BlockBitmapStart numbfs.Block `json:"blockBitmapStart" yaml:"blockBitmapStart"`
	DataStart        numbfs.Block `json:"dataStart"        yaml:"dataStart"`
	FreeInodes       uint32       `json:"freeInodes"       yaml:"freeInodes"`
	TotalInodes      uint32       `json:"totalInodes"      yaml:"totalInodes"`
	FreeBlocks       uint32       `json:"freeBlocks"       yaml:"freeBlocks"`
	DataBlocks       uint32       `json:"dataBlocks"       yaml:"dataBlocks"`
}

type Usage struct {
	Used    int     `json:"used"    yaml:"used"`
	Total   uint32  `json:"total"   yaml:"total"`
	Percent float64 `json:"percent" yaml:"percent"`
}

type Inode struct {
	Nid       numbfs.Nid  `json:"nid"               yaml:"nid"`
	Type      string      `json:"type"              yaml:"type"`
	LinkCount uint16      `json:"linkCount"         yaml:"linkCount"`
	UID       uint16      `json:"uid"               yaml:"uid"`
	GID       uint16      `json:"gid"               yaml:"gid"`
	ATime     string      `json:"atime"             yaml:"atime"`
	MTime     string      `json:"mtime"             yaml:"mtime"`
	CTime     string      `json:"ctime"             yaml:"ctime"`
	Size      numbfs.Byte `json:"size"              yaml:"size"`
	Xattrs    []Xattr     `json:"xattrs,omitempty"  yaml:"xattrs,omitempty"`
	Entries   []DirEntry  `json:"entries,omitempty" yaml:"entries,omitempty"`
}

type Xattr struct {
	Type  uint8  `json:"type"  yaml:"type"`
	Name  string `json:"name"  yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

type DirEntry struct {
	Nid     numbfs.Nid `json:"nid"     yaml:"nid"`
	Type    string     `json:"type"    yaml:"type"`
	NameLen int        `json:"nameLen" yaml:"nameLen"`
	Name    string     `json:"name"    yaml:"name"`
}

// Params selects the optional report sections.
type Params struct {
	ShowInodes bool
	ShowBlocks bool

	// Nid selects the inode to dump; negative means none.
	Nid int
}

// Build runs the inspection for the requested sections. A bitmap
// population disagreeing with the superblock counters fails the whole
// build; no approximate usage figure is reported.
func Build(fs *numbfs.FileSystem, params *Params) (Report, error) {
	sb := &fs.Superblock
	out := Report{
		Superblock: Superblock{
			InodeBitmapStart: sb.InodeBitmapStart,
			InodeStart:       sb.InodeStart,
			BlockBitmapStart: sb.BlockBitmapStart,
			DataStart:        sb.DataStart,
			FreeInodes:       sb.FreeInodes,
			TotalInodes:      sb.TotalInodes,
			FreeBlocks:       sb.FreeBlocks,
			DataBlocks:       sb.DataBlocks,
		},
	}

	if params.ShowInodes {
		used, err := fs.CheckInodeBitmap()
		if err != nil {
			return Report{}, fmt.Errorf("building report: %w", err)
		}
		out.InodeUsage = usage(used, sb.TotalInodes)
	}

	if params.ShowBlocks {
		used, err := fs.CheckBlockBitmap()
		if err != nil {
			return Report{}, fmt.Errorf("building report: %w", err)
		}
		out.BlockUsage = usage(used, sb.DataBlocks)
	}

	if params.Nid >= 0 {
		inode, err := buildInode(fs, numbfs.Nid(params.Nid))
		if err != nil {
			return Report{}, fmt.Errorf("building report: %w", err)
		}
		out.Inode = inode
	}

	return out, nil
}

func usage(used int, total uint32) *Usage {
	return &Usage{
		Used:    used,
		Total:   total,
		Percent: 100 * float64(used) / float64(total),
	}
}

func buildInode(fs *numbfs.FileSystem, nid numbfs.Nid) (*Inode, error) {
	inode, err := fs.GetInode(nid)
	if err != nil {
		return nil, fmt.Errorf("dumping inode `%d`: %w", nid, err)
	}

	ts, xattrs, err := fs.DecodeAttributes(&inode)
	if err != nil {
		return nil, fmt.Errorf("dumping inode `%d`: %w", nid, err)
	}

	out := Inode{
		Nid:       inode.Nid,
		Type:      inode.Mode.Type().String(),
		LinkCount: inode.LinksCount,
		UID:       inode.UID,
		GID:       inode.GID,
		ATime:     date(ts.ATime),
		MTime:     date(ts.MTime),
		CTime:     date(ts.CTime),
		Size:      inode.Size,
	}

	for i := range xattrs {
		out.Xattrs = append(out.Xattrs, Xattr{
			Type:  xattrs[i].Type,
			Name:  string(xattrs[i].Name),
			Value: string(xattrs[i].Value),
		})
	}

	if inode.Mode.Type() == numbfs.FileTypeDir {
		iter, err := fs.IterateDirectory(&inode)
		if err != nil {
			return nil, fmt.Errorf("dumping inode `%d`: %w", nid, err)
		}
		for {
			entry, ok, err := iter.Next()
			if err != nil {
				return nil, fmt.Errorf("dumping inode `%d`: %w", nid, err)
			}
			if !ok {
				break
			}
			out.Entries = append(out.Entries, DirEntry{
				Nid:     entry.Nid,
				Type:    direntType(entry.Type),
				NameLen: len(entry.Name),
				Name:    entry.Name,
			})
		}
	}

	return &out, nil
}

func date(seconds int64) string {
	return time.Unix(seconds, 0).Format("2006-01-02 15:04:05")
}

func direntType(t uint8) string {
	switch t {
	case numbfs.DirentTypeDir:
		return "DIR"
	case numbfs.DirentTypeSymlink:
		return "SYMLINK"
	default:
		return "REGULAR"
	}
}
