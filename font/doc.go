// Package font is the Glyphs 3 document model.
//
// Records are plain structs mapped with package gomap; keys the model does
// not know are kept in each record's Rest field and written back on save,
// so files from newer versions of Glyphs survive a load and save.
//
//	f, err := font.Load("MyFont.glyphs")
//	...
//	f.Glyph("A").Layers[0].Width = 600
//	err = f.Save("MyFont.glyphs")
package font
