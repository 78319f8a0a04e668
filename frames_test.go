package gifmanip_test

import (
	"image"
	"image/color"

	"github.com/kmininger/gifmanip"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("ParseDirection", func() {
	It("accepts the short and long spellings in any case", func() {
		for _, s := range []string{"c", "C", "cw", "Clockwise"} {
			Expect(gifmanip.ParseDirection(s)).To(Equal(gifmanip.Clockwise))
		}
		for _, s := range []string{"cc", "CC", "ccw", "counterclockwise"} {
			Expect(gifmanip.ParseDirection(s)).To(Equal(gifmanip.Counterclockwise))
		}
	})

	It("rejects anything else", func() {
		_, err := gifmanip.ParseDirection("up")
		Expect(err).To(MatchError(gifmanip.ErrDirection))
	})
})

var _ = Describe("Spin", func() {
	src := quadrants(8)

	It("turns clockwise a quarter at a time", func() {
		frames, err := gifmanip.Spin{Direction: gifmanip.Clockwise}.Frames(src)
		Expect(err).NotTo(HaveOccurred())
		Expect(frames).To(HaveLen(4))
		Expect(corners(frames[0])).To(Equal([]color.NRGBA{red, green, white, blue}))
		Expect(corners(frames[1])).To(Equal([]color.NRGBA{blue, red, green, white}))
		Expect(corners(frames[2])).To(Equal([]color.NRGBA{white, blue, red, green}))
		Expect(corners(frames[3])).To(Equal([]color.NRGBA{green, white, blue, red}))
	})

	It("turns counterclockwise a quarter at a time", func() {
		frames, err := gifmanip.Spin{Direction: gifmanip.Counterclockwise}.Frames(src)
		Expect(err).NotTo(HaveOccurred())
		Expect(frames).To(HaveLen(4))
		Expect(corners(frames[1])).To(Equal([]color.NRGBA{green, white, blue, red}))
		Expect(corners(frames[2])).To(Equal([]color.NRGBA{white, blue, red, green}))
		Expect(corners(frames[3])).To(Equal([]color.NRGBA{blue, red, green, white}))
	})

	It("keeps the canvas of non-square images and fills the corners", func() {
		frames, err := gifmanip.Spin{Background: white}.Frames(uniform(4, 2, red))
		Expect(err).NotTo(HaveOccurred())
		for _, f := range frames {
			Expect(f.Bounds().Dx()).To(Equal(4))
			Expect(f.Bounds().Dy()).To(Equal(2))
		}
		Expect(at(frames[1], 0, 0)).To(Equal(white))
		Expect(at(frames[1], 1, 0)).To(Equal(red))
		Expect(at(frames[1], 3, 1)).To(Equal(white))
		Expect(at(frames[2], 0, 0)).To(Equal(red))
	})
})

var _ = Describe("Flip", func() {
	It("flips top to bottom, then mirrors left to right", func() {
		frames, err := gifmanip.Flip{}.Frames(quadrants(8))
		Expect(err).NotTo(HaveOccurred())
		Expect(frames).To(HaveLen(2))
		Expect(corners(frames[0])).To(Equal([]color.NRGBA{blue, white, green, red}))
		Expect(corners(frames[1])).To(Equal([]color.NRGBA{green, red, blue, white}))
	})
})

var _ = Describe("FineSpin", func() {
	It("defaults to eighteen frames from 1 to 341 degrees", func() {
		angles, err := gifmanip.NewFineSpin(gifmanip.Clockwise).Angles()
		Expect(err).NotTo(HaveOccurred())
		Expect(angles).To(HaveLen(18))
		Expect(angles[0]).To(Equal(1.0))
		Expect(angles[1]).To(Equal(21.0))
		Expect(angles[17]).To(Equal(341.0))
	})

	It("includes a full turn when the steps land on it", func() {
		angles, err := gifmanip.FineSpin{Start: 0, Step: 90}.Angles()
		Expect(err).NotTo(HaveOccurred())
		Expect(angles).To(Equal([]float64{0, 90, 180, 270, 360}))
	})

	It("rejects a step that never advances", func() {
		_, err := gifmanip.FineSpin{Start: 1}.Frames(quadrants(8))
		Expect(err).To(MatchError(gifmanip.ErrStep))
		_, err = gifmanip.FineSpin{Start: 1, Step: -20}.Angles()
		Expect(err).To(MatchError(gifmanip.ErrStep))
	})

	It("keeps every frame on the source canvas and fills uncovered corners", func() {
		frames, err := gifmanip.NewFineSpin(gifmanip.Clockwise).Frames(uniform(20, 20, red))
		Expect(err).NotTo(HaveOccurred())
		Expect(frames).To(HaveLen(18))
		for _, f := range frames {
			Expect(f.Bounds().Dx()).To(Equal(20))
			Expect(f.Bounds().Dy()).To(Equal(20))
			Expect(at(f, 10, 10)).To(Equal(red))
		}
		Expect(at(frames[2], 0, 0)).To(Equal(black))
	})

	It("keeps the canvas of non-square images at every angle", func() {
		for _, dir := range []gifmanip.Direction{gifmanip.Clockwise, gifmanip.Counterclockwise} {
			frames, err := gifmanip.NewFineSpin(dir).Frames(uniform(64, 48, red))
			Expect(err).NotTo(HaveOccurred())
			Expect(frames).To(HaveLen(18))
			for _, f := range frames {
				Expect(f.Bounds().Size()).To(Equal(image.Pt(64, 48)))
				Expect(at(f, 32, 24)).To(Equal(red))
			}
			// 81 degrees: the rotated box is narrower than the canvas.
			Expect(at(frames[4], 0, 24)).To(Equal(black))
		}
	})

	It("animates percent-reduced photos", func() {
		img := gifmanip.Canvas{Width: 120, Height: 120, Percent: 0.4}.Fit(uniform(400, 300, red))
		Expect(img.Bounds().Size()).To(Equal(image.Pt(160, 120)))

		anim, err := gifmanip.Synthesize(img, gifmanip.NewFineSpin(gifmanip.Clockwise), gifmanip.Speed(50))
		Expect(err).NotTo(HaveOccurred())
		Expect(anim.Frames).To(HaveLen(18))
		for _, f := range anim.Frames {
			Expect(f.Bounds().Size()).To(Equal(image.Pt(160, 120)))
		}
	})

	It("rotates in the requested direction", func() {
		cw, err := gifmanip.FineSpin{Direction: gifmanip.Clockwise, Start: 90, Step: 360}.Frames(quadrants(20))
		Expect(err).NotTo(HaveOccurred())
		Expect(cw).To(HaveLen(1))
		Expect(corners(cw[0])).To(Equal([]color.NRGBA{blue, red, green, white}))

		ccw, err := gifmanip.FineSpin{Direction: gifmanip.Counterclockwise, Start: 90, Step: 360}.Frames(quadrants(20))
		Expect(err).NotTo(HaveOccurred())
		Expect(corners(ccw[0])).To(Equal([]color.NRGBA{green, white, blue, red}))
	})
})

var _ = Describe("Strobe", func() {
	It("flashes the color after every turn", func() {
		orange := gifmanip.StrobeColors["orange"]
		frames, err := gifmanip.Strobe{Direction: gifmanip.Clockwise, Color: orange}.Frames(quadrants(8))
		Expect(err).NotTo(HaveOccurred())
		Expect(frames).To(HaveLen(7))

		Expect(corners(frames[0])).To(Equal([]color.NRGBA{red, green, white, blue}))
		Expect(corners(frames[1])).To(Equal([]color.NRGBA{blue, red, green, white}))
		Expect(corners(frames[3])).To(Equal([]color.NRGBA{white, blue, red, green}))
		Expect(corners(frames[5])).To(Equal([]color.NRGBA{green, white, blue, red}))
		for _, i := range []int{2, 4, 6} {
			Expect(frames[i].Bounds()).To(Equal(frames[0].Bounds()))
			Expect(at(frames[i], 4, 4)).To(Equal(color.NRGBA{R: 255, G: 140, A: 255}))
		}
	})

	It("keeps one canvas for non-square images", func() {
		frames, err := gifmanip.Strobe{Direction: gifmanip.Counterclockwise, Color: red}.Frames(uniform(64, 48, white))
		Expect(err).NotTo(HaveOccurred())
		Expect(frames).To(HaveLen(7))
		for _, f := range frames {
			Expect(f.Bounds().Size()).To(Equal(image.Pt(64, 48)))
		}
		Expect(at(frames[1], 0, 24)).To(Equal(black))
		Expect(at(frames[2], 0, 24)).To(Equal(red))

		_, err = gifmanip.Synthesize(uniform(64, 48, white), gifmanip.Strobe{Color: red}, gifmanip.Speed(100))
		Expect(err).NotTo(HaveOccurred())
	})

	It("needs a color", func() {
		_, err := gifmanip.Strobe{}.Frames(quadrants(8))
		Expect(err).To(MatchError(gifmanip.ErrColor))
	})
})
