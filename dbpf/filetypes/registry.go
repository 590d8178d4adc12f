// Package filetypes holds the static DBPF resource-type registry: the named
// 32-bit type codes and the PNG-bearing subset.
package filetypes

// Known resource type codes. The enumeration is data, not design; no
// algorithm in this module depends on specific values beyond equality.
const (
	Unknown       uint32 = 0
	BONE          uint32 = 0x00AE6C67
	IMG           uint32 = 0x00B2D882 // ddt
	SPT           uint32 = 0x00B552EA
	GEOM          uint32 = 0x015A1849
	NMAP          uint32 = 0x0166038C
	MODL          uint32 = 0x01661233
	AUDSNR        uint32 = 0x01A527DB
	AUDSNS        uint32 = 0x01EEF63A
	VBUF1         uint32 = 0x01D0E6FB
	IBUF1         uint32 = 0x01D0E70F
	VRTF          uint32 = 0x01D0E723
	MATD          uint32 = 0x01D0E75D
	SKIN          uint32 = 0x01D0E76B
	MLOD          uint32 = 0x01D10F34
	MTST          uint32 = 0x02019972
	SPT2          uint32 = 0x021D7E8C
	VBUF2         uint32 = 0x0229684B
	IBUF2         uint32 = 0x0229684F
	CSS           uint32 = 0x025C90A6
	LAYO          uint32 = 0x025C95B6
	SIMO          uint32 = 0x025ED6F4
	VOCE          uint32 = 0x029E333B
	MIXR          uint32 = 0x02C9EFF2
	JAZZ          uint32 = 0x02D5DF13
	OBJK          uint32 = 0x02DC343F
	TKMK          uint32 = 0x033260E3
	XMLResource   uint32 = 0x0333406C
	TXTC          uint32 = 0x033A1435
	TXTF          uint32 = 0x0341ACC9
	CASP          uint32 = 0x034AEECB
	SkinTone      uint32 = 0x0354796A
	HairTone      uint32 = 0x03555BA8
	BoneDelta     uint32 = 0x0355E0A6
	FACE          uint32 = 0x0358B08A
	ITUN          uint32 = 0x03B33DDF
	LITE          uint32 = 0x03B4C61D
	CCHE          uint32 = 0x03D843C2
	DETL          uint32 = 0x03D86EA4
	CFEN          uint32 = 0x0418FE2A
	COMP          uint32 = 0x044AE110
	LotLoc        uint32 = 0x046A7235
	LotID         uint32 = 0x0498DA7E
	CSTR          uint32 = 0x049CA4CD
	StairLocation uint32 = 0x04A09283
	WorldDetail   uint32 = 0x04A4D951
	CPRX          uint32 = 0x04AC5D93
	CTTL          uint32 = 0x04B30669
	CRAL          uint32 = 0x04C58103
	CMRU          uint32 = 0x04D82D90
	CTPT          uint32 = 0x04ED4BB2
	CFIR          uint32 = 0x04F3CC01
	SBNO          uint32 = 0x04F51033
	SIME          uint32 = 0x04F88964
	CBLN          uint32 = 0x051DF2DD
	SimSNAPUnk    uint32 = 0x0580A2CD // png
	SimSNAPSmall  uint32 = 0x0580A2CE // png
	SimSNAPLarge  uint32 = 0x0580A2CF // png
	UPST          uint32 = 0x0591B1AF
	TWNI          uint32 = 0x0668F635 // png
	OBJIconSmall  uint32 = 0x2E75C764 // png
	OBJIconMedium uint32 = 0x2E75C765 // png
	OBJIconLarge  uint32 = 0x2E75C766 // png
	OBJIconXLarge uint32 = 0x2E75C767 // png
	UIImageTGA    uint32 = 0x2F7D0002
	UIImagePNG    uint32 = 0x2F7D0004 // png

	OBJD             uint32 = 0x319E4F1D
	TravelSNAP       uint32 = 0x54372472 // png
	FamilySNAPSmall  uint32 = 0x6B6D837D // png
	FamilySNAPMedium uint32 = 0x6B6D837E // png
	FamilySNAPLarge  uint32 = 0x6B6D837F // png
	XMLManifest      uint32 = 0x73E93EEB
	PTRN             uint32 = 0xD4D9FBE5
	LotIconSmall     uint32 = 0xD84E7FC5 // png
	LotIconMedium    uint32 = 0xD84E7FC6 // png
	LotIconLarge     uint32 = 0xD84E7FC7 // png
	ColorThumb       uint32 = 0xFCEAB65B // png

	// PackageNameHint is the "XML Resource master package name" code used
	// by package_names as a representative fallback when no CASP/OBJD/NMAP
	// entry carries a named instance.
	PackageNameHint uint32 = 0xB52F5055
)

// byName backs TypeCodeForName.
var byName = map[string]uint32{
	"BONE": BONE, "IMG": IMG, "SPT": SPT, "GEOM": GEOM, "NMAP": NMAP,
	"MODL": MODL, "AUDSNR": AUDSNR, "AUDSNS": AUDSNS, "VBUF1": VBUF1,
	"IBUF1": IBUF1, "VRTF": VRTF, "MATD": MATD, "SKIN": SKIN, "MLOD": MLOD,
	"MTST": MTST, "SPT2": SPT2, "VBUF2": VBUF2, "IBUF2": IBUF2, "CSS": CSS,
	"LAYO": LAYO, "SIMO": SIMO, "VOCE": VOCE, "MIXR": MIXR, "JAZZ": JAZZ,
	"OBJK": OBJK, "TKMK": TKMK, "XMLResource": XMLResource, "TXTC": TXTC,
	"TXTF": TXTF, "CASP": CASP, "SkinTone": SkinTone, "HairTone": HairTone,
	"BoneDelta": BoneDelta, "FACE": FACE, "ITUN": ITUN, "LITE": LITE,
	"CCHE": CCHE, "DETL": DETL, "CFEN": CFEN, "COMP": COMP, "LotLoc": LotLoc,
	"LotID": LotID, "CSTR": CSTR, "StairLocation": StairLocation,
	"WorldDetail": WorldDetail, "CPRX": CPRX, "CTTL": CTTL, "CRAL": CRAL,
	"CMRU": CMRU, "CTPT": CTPT, "CFIR": CFIR, "SBNO": SBNO, "SIME": SIME,
	"CBLN": CBLN, "SimSNAPUnk": SimSNAPUnk, "SimSNAPSmall": SimSNAPSmall,
	"SimSNAPLarge": SimSNAPLarge, "UPST": UPST, "TWNI": TWNI,
	"OBJIconSmall": OBJIconSmall, "OBJIconMedium": OBJIconMedium,
	"OBJIconLarge": OBJIconLarge, "OBJIconXLarge": OBJIconXLarge,
	"UIImageTGA": UIImageTGA, "UIImagePNG": UIImagePNG, "OBJD": OBJD,
	"TravelSNAP": TravelSNAP, "FamilySNAPSmall": FamilySNAPSmall,
	"FamilySNAPMedium": FamilySNAPMedium, "FamilySNAPLarge": FamilySNAPLarge,
	"XMLManifest": XMLManifest, "PTRN": PTRN, "LotIconSmall": LotIconSmall,
	"LotIconMedium": LotIconMedium, "LotIconLarge": LotIconLarge,
	"ColorThumb": ColorThumb,
}

// pngResources is the fixed 41-code PNG-bearing set: thumbnails at several
// sizes, travel/family snapshots, lot icons, color thumbs, UI images, and
// object icons, including codes with no named constant (thumbnail variants
// only ever seen inside AllThumbnails.package / CasThumbnails.package).
var pngResources = [41]uint32{
	SimSNAPUnk, SimSNAPSmall, SimSNAPLarge,
	0x0580A2B4, 0x0580A2B5, 0x0580A2B6,
	0x0589DC44, 0x0589DC45, 0x0589DC46,
	0x05B17698, 0x05B17699, 0x05B1769A,
	0x05B1B524, 0x05B1B525, 0x05B1B526,
	TWNI,
	0x2653E3C8, 0x2653E3C9, 0x2653E3CA,
	0x2D4284F0, 0x2D4284F1, 0x2D4284F2,
	OBJIconSmall, OBJIconMedium, OBJIconLarge, OBJIconXLarge,
	UIImagePNG,
	TravelSNAP,
	0x5DE9DBA0, 0x5DE9DBA1, 0x5DE9DBA2,
	0x626F60CC, 0x626F60CD, 0x626F60CE,
	FamilySNAPSmall, FamilySNAPMedium, FamilySNAPLarge,
	LotIconSmall, LotIconMedium, LotIconLarge,
	ColorThumb,
}

// TypeCodeForName looks up a resource type's 32-bit code by its symbolic
// name, reporting ok=false for unknown names.
func TypeCodeForName(name string) (code uint32, ok bool) {
	code, ok = byName[name]
	return code, ok
}

// IsPNGResource reports whether code names one of the 41 PNG-bearing
// resource types.
func IsPNGResource(code uint32) bool {
	for _, c := range pngResources {
		if c == code {
			return true
		}
	}
	return false
}
