// seehuhn.de/go/tablepdf - lay out tables on PDF pages
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pdfout

import (
	"golang.org/x/text/language"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/xmp"

	"seehuhn.de/go/tablepdf/render"
)

// xmpPDF is the XMP namespace for PDF properties.
type xmpPDF struct {
	_        xmp.Namespace `xmp:"http://ns.adobe.com/pdf/1.3/"`
	_        xmp.Prefix    `xmp:"pdf"`
	Keywords xmp.Text
	Producer xmp.AgentName
}

// writeMetadata stores the document metadata both in the document
// information dictionary and as an XMP packet.
func (b *Backend) writeMetadata() error {
	m := b.meta
	if m == (render.Metadata{}) && b.opt.Producer == "" {
		return nil
	}

	b.out.GetMeta().Info = &pdf.Info{
		Title:    pdf.TextString(m.Title),
		Author:   pdf.TextString(m.Author),
		Subject:  pdf.TextString(m.Subject),
		Keywords: pdf.TextString(m.Keywords),
		Producer: pdf.TextString(b.opt.Producer),
	}

	dc := &xmp.DublinCore{}
	if m.Title != "" {
		dc.Title.Set(language.MustParse("x-default"), m.Title)
	}
	if m.Author != "" {
		dc.Creator.Append(xmp.NewProperName(m.Author))
	}
	if m.Subject != "" {
		dc.Description.Set(language.MustParse("x-default"), m.Subject)
	}
	pdfInfo := &xmpPDF{}
	if m.Keywords != "" {
		pdfInfo.Keywords = xmp.NewText(m.Keywords)
	}
	if b.opt.Producer != "" {
		pdfInfo.Producer = xmp.NewAgentName(b.opt.Producer)
	}

	packet := xmp.NewPacket()
	if b.opt.Time.IsZero() {
		packet.Set(dc, pdfInfo)
	} else {
		basic := &xmp.Basic{}
		basic.CreateDate = xmp.NewDate(b.opt.Time)
		basic.ModifyDate = xmp.NewDate(b.opt.Time)
		packet.Set(dc, basic, pdfInfo)
	}

	ref := b.out.Alloc()
	dict := pdf.Dict{
		"Type":    pdf.Name("Metadata"),
		"Subtype": pdf.Name("XML"),
	}
	stm, err := b.out.OpenStream(ref, dict)
	if err != nil {
		return err
	}
	err = packet.Write(stm, &xmp.PacketOptions{Pretty: true})
	if err != nil {
		return err
	}
	err = stm.Close()
	if err != nil {
		return err
	}
	b.out.GetMeta().Catalog.Metadata = ref
	return nil
}
