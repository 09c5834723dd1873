package snapshot

import (
	"strconv"
	"strings"

	"github.com/specialistvlad/configsnap/internal/config"
)

const (
	linePrefix  = "// "
	itemPrefix  = "//   | "
	tablePrefix = "//   |> "
)

// builder accumulates one snapshot. It is never shared, so a formatter that
// bails out simply drops it.
type builder struct {
	sb strings.Builder
}

func (b *builder) field(name, value string) {
	b.sb.WriteString(linePrefix)
	b.sb.WriteString("[" + name + "]: ")
	b.sb.WriteString(value)
	b.sb.WriteString(NewLine)
}

func (b *builder) boolField(name string, v bool) {
	b.field(name, strconv.FormatBool(v))
}

func (b *builder) intField(name string, v int) {
	b.field(name, strconv.Itoa(v))
}

func (b *builder) list(name string, items []string) {
	b.sb.WriteString(linePrefix + name + ":" + NewLine)
	for _, item := range items {
		b.item(item)
	}
}

func (b *builder) item(s string) {
	b.sb.WriteString(itemPrefix)
	b.sb.WriteString(s)
	b.sb.WriteString(NewLine)
}

// table writes t as a nested block under a "name:" header.
func (b *builder) table(name string, t config.Table) {
	b.sb.WriteString(linePrefix + name + ":" + NewLine)
	if block := FormatTable(t, tablePrefix, NewLine); block != "" {
		b.sb.WriteString(block)
		b.sb.WriteString(NewLine)
	}
}

// text writes the text metadata of a file, or the null marker when the host
// could not read it.
func (b *builder) text(info *config.TextInfo) {
	if info == nil {
		b.field("Text", MarkerNull)
		return
	}
	b.boolField("CanBeEmbedded", info.CanBeEmbedded)
	b.field("ChecksumAlgorithm", info.ChecksumAlgorithm)
	b.field("Encoding", FormatValue(info.Encoding, true))
	b.intField("Length", info.Length)
	b.intField("Lines", info.Lines)
}

func (b *builder) blank() {
	b.sb.WriteString(NewLine)
}

func (b *builder) String() string {
	return b.sb.String()
}
