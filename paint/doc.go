// Package paint is the 2D immediate-mode drawing backend used by controls.
//
// A Paint draws into a Bitmap with fonts, brushes, pens and images. The
// rasterizer is github.com/gogpu/gg running in software mode, so painting
// needs no display connection and works in tests and headless tools.
//
// Example:
//
//	bmp := paint.NewBitmap(200, 100)
//	p := paint.New(bmp)
//	defer p.Close()
//
//	p.Clear(color.White)
//	p.FillRect(paint.NewSolidBrush(color.Black), paint.R(10, 10, 190, 90))
//	bmp.SavePNG("out.png")
package paint
