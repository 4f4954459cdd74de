// Package xmlout serializes an invocation's untouched value sequence to an
// XML document. The values are handed over verbatim: no trimming, suppression
// or annotation applies to this destination.
package xmlout

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/arthur-debert/outmux/pkg/errors"
)

// Write serializes values to path. Each value becomes a <value> element
// carrying its input index and Go type, with the value's default textual
// rendering as text content. With dryRun the document is still built, so
// serialization errors surface, but nothing touches the filesystem.
func Write(path string, values []any, dryRun bool) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("values")
	root.CreateAttr("count", strconv.Itoa(len(values)))
	for i, v := range values {
		el := root.CreateElement("value")
		el.CreateAttr("index", strconv.Itoa(i))
		el.CreateAttr("type", fmt.Sprintf("%T", v))
		el.SetText(fmt.Sprintf("%v", v))
	}
	doc.Indent(2)

	if dryRun {
		return nil
	}
	if err := doc.WriteToFile(path); err != nil {
		return errors.Wrapf(err, errors.ErrXmlWrite, "write xml file %s", path)
	}
	return nil
}
