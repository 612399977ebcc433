package numbfs

import "testing"

func TestDirEntryEncodeDecode(t *testing.T) {
	wanted := DirEntry{Nid: 42, Type: DirentTypeDir, Name: "projects"}
	var buf [DirEntrySize]byte
	EncodeDirEntry(&wanted, &buf)
	var found DirEntry
	DecodeDirEntry(&found, &buf)
	if wanted != found {
		t.Fatalf("DecodeDirEntry(): wanted `%+v`; found `%+v`", wanted, found)
	}
}

func TestDecodeDirEntryClampsNameLen(t *testing.T) {
	var buf [DirEntrySize]byte
	buf[direntFieldNameLen] = 255
	buf[direntFieldType] = DirentTypeRegular
	copy(buf[direntFieldName:], "short")

	var found DirEntry
	DecodeDirEntry(&found, &buf)
	if len(found.Name) != MaxPathLen {
		t.Fatalf(
			"DecodeDirEntry(): name length: wanted `%d`; found `%d`",
			MaxPathLen,
			len(found.Name),
		)
	}
}
