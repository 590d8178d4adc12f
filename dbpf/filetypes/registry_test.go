package filetypes_test

import (
	"testing"

	"github.com/kitlith/sims3-dbpf/dbpf/filetypes"
)

// allPNGResources mirrors the filetypes package's unexported pngResources
// table entry-for-entry, so TestIsPNGResource can confirm every one of the
// 41 codes reports true instead of only a hand-picked sample.
var allPNGResources = [41]uint32{
	filetypes.SimSNAPUnk, filetypes.SimSNAPSmall, filetypes.SimSNAPLarge,
	0x0580A2B4, 0x0580A2B5, 0x0580A2B6,
	0x0589DC44, 0x0589DC45, 0x0589DC46,
	0x05B17698, 0x05B17699, 0x05B1769A,
	0x05B1B524, 0x05B1B525, 0x05B1B526,
	filetypes.TWNI,
	0x2653E3C8, 0x2653E3C9, 0x2653E3CA,
	0x2D4284F0, 0x2D4284F1, 0x2D4284F2,
	filetypes.OBJIconSmall, filetypes.OBJIconMedium, filetypes.OBJIconLarge, filetypes.OBJIconXLarge,
	filetypes.UIImagePNG,
	filetypes.TravelSNAP,
	0x5DE9DBA0, 0x5DE9DBA1, 0x5DE9DBA2,
	0x626F60CC, 0x626F60CD, 0x626F60CE,
	filetypes.FamilySNAPSmall, filetypes.FamilySNAPMedium, filetypes.FamilySNAPLarge,
	filetypes.LotIconSmall, filetypes.LotIconMedium, filetypes.LotIconLarge,
	filetypes.ColorThumb,
}

func TestIsPNGResource(t *testing.T) {
	t.Parallel()

	for _, code := range allPNGResources {
		if !filetypes.IsPNGResource(code) {
			t.Errorf("IsPNGResource(%#x) = false, want true (in pngResources table)", code)
		}
	}
}

func TestIsPNGResourceNegatives(t *testing.T) {
	t.Parallel()

	nonPNG := []uint32{
		filetypes.Unknown, filetypes.GEOM, filetypes.NMAP, filetypes.MODL,
		filetypes.CASP, filetypes.OBJD, filetypes.FACE, filetypes.SkinTone,
		filetypes.HairTone, filetypes.XMLResource, filetypes.XMLManifest,
		filetypes.PackageNameHint, filetypes.UIImageTGA, filetypes.PTRN,
		filetypes.VBUF1, filetypes.IBUF1,
		// Values immediately adjacent to PNG codes, to catch an
		// off-by-one in the table or an accidental range check.
		0x0580A2B3, 0x0580A2B7, 0x2E75C763, 0x2E75C768,
		0xFCEAB65A, 0xFCEAB65C,
		0xFFFFFFFF,
	}

	for _, code := range nonPNG {
		if filetypes.IsPNGResource(code) {
			t.Errorf("IsPNGResource(%#x) = true, want false", code)
		}
	}
}

func TestTypeCodeForName(t *testing.T) {
	t.Parallel()

	code, ok := filetypes.TypeCodeForName("GEOM")
	if !ok || code != filetypes.GEOM {
		t.Errorf("TypeCodeForName(%q) = (%#x, %v), want (%#x, true)", "GEOM", code, ok, filetypes.GEOM)
	}

	if _, ok := filetypes.TypeCodeForName("NOT_A_REAL_TYPE"); ok {
		t.Error("TypeCodeForName() returned ok=true for an unknown name")
	}
}
