package deck

import (
	"fmt"
	"os"

	"github.com/unidoc/unioffice/common"
	"github.com/unidoc/unioffice/measurement"
	"github.com/unidoc/unioffice/schema/soo/pml"
)

// Screen DPI assumed when deriving a picture size from pixel dimensions.
const imageDPI = 96

// ImageSpec positions a picture in inches. A zero Width or Height is derived
// from the image's pixel size so the aspect ratio is kept; when both are
// zero the native size at screen resolution is used.
type ImageSpec struct {
	X, Y          float64
	Width, Height float64
}

func (s ImageSpec) resolve(pxW, pxH int) (w, h float64) {
	natW := float64(pxW) / imageDPI
	natH := float64(pxH) / imageDPI
	switch {
	case s.Width > 0 && s.Height > 0:
		return s.Width, s.Height
	case s.Width > 0:
		return s.Width, s.Width * natH / natW
	case s.Height > 0:
		return s.Height * natW / natH, s.Height
	default:
		return natW, natH
	}
}

func (d *Deck) addImage(slideIndex int, img common.Image, spec ImageSpec) (int, error) {
	slide, err := d.slide(slideIndex)
	if err != nil {
		return 0, err
	}
	iref, err := d.ppt.AddImage(img)
	if err != nil {
		return 0, fmt.Errorf("failed to register image: %w", err)
	}

	w, h := spec.resolve(img.Size.X, img.Size.Y)
	pic := slide.AddImage(iref)
	pic.Properties().SetPosition(
		measurement.Distance(spec.X)*measurement.Inch,
		measurement.Distance(spec.Y)*measurement.Inch)
	pic.Properties().SetSize(
		measurement.Distance(w)*measurement.Inch,
		measurement.Distance(h)*measurement.Inch)

	entries, err := d.shapes(slideIndex)
	if err != nil {
		return 0, err
	}
	return len(entries) - 1, nil
}

// AddImageFile inserts a picture from a file and returns its shape index.
func (d *Deck) AddImageFile(slideIndex int, path string, spec ImageSpec) (int, error) {
	if _, err := os.Stat(path); err != nil {
		return 0, fmt.Errorf("image file not found: %s", path)
	}
	img, err := common.ImageFromFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read image %s: %w", path, err)
	}
	return d.addImage(slideIndex, img, spec)
}

// AddImageBytes inserts an in-memory picture and returns its shape index.
func (d *Deck) AddImageBytes(slideIndex int, data []byte, spec ImageSpec) (int, error) {
	img, err := common.ImageFromBytes(data)
	if err != nil {
		return 0, fmt.Errorf("failed to decode image: %w", err)
	}
	return d.addImage(slideIndex, img, spec)
}

// ReplacePicture swaps the image of an existing picture shape while keeping
// its position, size, and any effects.
func (d *Deck) ReplacePicture(slideIndex, shapeIndex int, data []byte) error {
	e, err := d.shapeAt(slideIndex, shapeIndex)
	if err != nil {
		return err
	}
	if e.pic == nil {
		return fmt.Errorf("shape %d on slide %d is not a picture", shapeIndex, slideIndex)
	}
	if e.pic.BlipFill == nil || e.pic.BlipFill.Blip == nil {
		return fmt.Errorf("picture %d on slide %d has no image fill", shapeIndex, slideIndex)
	}

	img, err := common.ImageFromBytes(data)
	if err != nil {
		return fmt.Errorf("failed to decode replacement image: %w", err)
	}
	iref, err := d.ppt.AddImage(img)
	if err != nil {
		return fmt.Errorf("failed to register replacement image: %w", err)
	}

	// Inserting through the slide creates the relationship; the temporary
	// shape is removed once the rel id has been moved over.
	slide, err := d.slide(slideIndex)
	if err != nil {
		return err
	}
	slide.AddImage(iref)

	entries, err := d.shapes(slideIndex)
	if err != nil {
		return err
	}
	tmp := entries[len(entries)-1]
	if tmp.pic == nil || tmp.pic.BlipFill == nil || tmp.pic.BlipFill.Blip == nil {
		return fmt.Errorf("failed to attach replacement image to slide %d", slideIndex)
	}
	e.pic.BlipFill.Blip.EmbedAttr = tmp.pic.BlipFill.Blip.EmbedAttr
	return d.DeleteShape(slideIndex, len(entries)-1)
}

// SetBackgroundImage covers the whole slide with the given image and pushes
// it to the back of the z-order.
func (d *Deck) SetBackgroundImage(slideIndex int, data []byte) error {
	w, h := d.SlideSize()
	if _, err := d.AddImageBytes(slideIndex, data, ImageSpec{Width: w, Height: h}); err != nil {
		return err
	}
	slide, err := d.slide(slideIndex)
	if err != nil {
		return err
	}
	tree := slide.X().CSld.SpTree
	last := len(tree.Choice) - 1
	if last < 1 {
		return nil
	}
	entry := tree.Choice[last]
	tree.Choice = append([]*pml.CT_GroupShapeChoice{entry}, tree.Choice[:last]...)
	return nil
}
