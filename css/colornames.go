package css

// colorByName is the fixed CSS/SVG + CSS2 system color name table. Components
// are fractions in [0, 1].
var colorByName = map[string]Color{
	"activeborder":         rgb255(212, 208, 200),
	"activecaption":        rgb255(10, 36, 106),
	"aliceblue":            rgb(0.941176, 0.972549, 1.0),
	"antiquewhite":         rgb(0.980392, 0.921569, 0.843137),
	"appworkspace":         rgb255(128, 128, 128),
	"aqua":                 rgb(0.0, 1.0, 1.0),
	"aquamarine":           rgb(0.498039, 1.0, 0.831373),
	"azure":                rgb(0.941176, 1.0, 1.0),
	"background":           rgb255(58, 110, 165),
	"beige":                rgb(0.960784, 0.960784, 0.862745),
	"bisque":               rgb(1.0, 0.894118, 0.768627),
	"black":                rgb(0.0, 0.0, 0.0),
	"blanchedalmond":       rgb(1.0, 0.921569, 0.803922),
	"blue":                 rgb(0.0, 0.0, 1.0),
	"blueviolet":           rgb(0.541176, 0.168627, 0.886275),
	"brown":                rgb(0.647059, 0.164706, 0.164706),
	"burlywood":            rgb(0.870588, 0.721569, 0.529412),
	"buttonface":           rgb255(212, 208, 200),
	"buttonhighlight":      rgb255(255, 255, 255),
	"buttonshadow":         rgb255(128, 128, 128),
	"buttontext":           rgb(0.0, 0.0, 0.0),
	"cadetblue":            rgb(0.372549, 0.619608, 0.627451),
	"captiontext":          rgb255(255, 255, 255),
	"chartreuse":           rgb(0.498039, 1.0, 0.0),
	"chocolate":            rgb(0.823529, 0.411765, 0.117647),
	"coral":                rgb(1.0, 0.498039, 0.313725),
	"cornflowerblue":       rgb(0.392157, 0.584314, 0.929412),
	"cornsilk":             rgb(1.0, 0.972549, 0.862745),
	"crimson":              rgb(0.862745, 0.078431, 0.235294),
	"cyan":                 rgb(0.0, 1.0, 1.0),
	"darkblue":             rgb(0.0, 0.0, 0.545098),
	"darkcyan":             rgb(0.0, 0.545098, 0.545098),
	"darkgoldenrod":        rgb(0.721569, 0.52549, 0.043137),
	"darkgray":             rgb(0.662745, 0.662745, 0.662745),
	"darkgreen":            rgb(0.0, 0.392157, 0.0),
	"darkgrey":             rgb(0.662745, 0.662745, 0.662745),
	"darkkhaki":            rgb(0.741176, 0.717647, 0.419608),
	"darkmagenta":          rgb(0.545098, 0.0, 0.545098),
	"darkolivegreen":       rgb(0.333333, 0.419608, 0.184314),
	"darkorange":           rgb(1.0, 0.54902, 0.0),
	"darkorchid":           rgb(0.6, 0.196078, 0.8),
	"darkred":              rgb(0.545098, 0.0, 0.0),
	"darksalmon":           rgb(0.913725, 0.588235, 0.478431),
	"darkseagreen":         rgb(0.560784, 0.737255, 0.560784),
	"darkslateblue":        rgb(0.282353, 0.239216, 0.545098),
	"darkslategray":        rgb(0.184314, 0.309804, 0.309804),
	"darkslategrey":        rgb(0.184314, 0.309804, 0.309804),
	"darkturquoise":        rgb(0.0, 0.807843, 0.819608),
	"darkviolet":           rgb(0.580392, 0.0, 0.827451),
	"deeppink":             rgb(1.0, 0.078431, 0.576471),
	"deepskyblue":          rgb(0.0, 0.74902, 1.0),
	"dimgray":              rgb(0.411765, 0.411765, 0.411765),
	"dimgrey":              rgb(0.411765, 0.411765, 0.411765),
	"dodgerblue":           rgb(0.117647, 0.564706, 1.0),
	"firebrick":            rgb(0.698039, 0.133333, 0.133333),
	"floralwhite":          rgb(1.0, 0.980392, 0.941176),
	"forestgreen":          rgb(0.133333, 0.545098, 0.133333),
	"fuchsia":              rgb(1.0, 0.0, 1.0),
	"gainsboro":            rgb(0.862745, 0.862745, 0.862745),
	"ghostwhite":           rgb(0.972549, 0.972549, 1.0),
	"gold":                 rgb(1.0, 0.843137, 0.0),
	"goldenrod":            rgb(0.854902, 0.647059, 0.12549),
	"gray":                 rgb(0.501961, 0.501961, 0.501961),
	"graytext":             rgb255(128, 128, 128),
	"green":                rgb(0.0, 0.501961, 0.0),
	"greenyellow":          rgb(0.678431, 1.0, 0.184314),
	"grey":                 rgb(0.501961, 0.501961, 0.501961),
	"highlight":            rgb255(10, 36, 106),
	"highlighttext":        rgb255(255, 255, 255),
	"honeydew":             rgb(0.941176, 1.0, 0.941176),
	"hotpink":              rgb(1.0, 0.411765, 0.705882),
	"inactiveborder":       rgb255(212, 208, 200),
	"inactivecaption":      rgb255(128, 128, 128),
	"inactivecaptiontext":  rgb255(212, 208, 200),
	"indianred":            rgb(0.803922, 0.360784, 0.360784),
	"indigo":               rgb(0.294118, 0.0, 0.509804),
	"infobackground":       rgb255(255, 255, 225),
	"infotext":             rgb(0.0, 0.0, 0.0),
	"ivory":                rgb(1.0, 1.0, 0.941176),
	"khaki":                rgb(0.941176, 0.901961, 0.54902),
	"lavender":             rgb(0.901961, 0.901961, 0.980392),
	"lavenderblush":        rgb(1.0, 0.941176, 0.960784),
	"lawngreen":            rgb(0.486275, 0.988235, 0.0),
	"lemonchiffon":         rgb(1.0, 0.980392, 0.803922),
	"lightblue":            rgb(0.678431, 0.847059, 0.901961),
	"lightcoral":           rgb(0.941176, 0.501961, 0.501961),
	"lightcyan":            rgb(0.878431, 1.0, 1.0),
	"lightgoldenrodyellow": rgb(0.980392, 0.980392, 0.823529),
	"lightgray":            rgb(0.827451, 0.827451, 0.827451),
	"lightgreen":           rgb(0.564706, 0.933333, 0.564706),
	"lightgrey":            rgb(0.827451, 0.827451, 0.827451),
	"lightpink":            rgb(1.0, 0.713725, 0.756863),
	"lightsalmon":          rgb(1.0, 0.627451, 0.478431),
	"lightseagreen":        rgb(0.12549, 0.698039, 0.666667),
	"lightskyblue":         rgb(0.529412, 0.807843, 0.980392),
	"lightslategray":       rgb(0.466667, 0.533333, 0.6),
	"lightslategrey":       rgb(0.466667, 0.533333, 0.6),
	"lightsteelblue":       rgb(0.690196, 0.768627, 0.870588),
	"lightyellow":          rgb(1.0, 1.0, 0.878431),
	"lime":                 rgb(0.0, 1.0, 0.0),
	"limegreen":            rgb(0.196078, 0.803922, 0.196078),
	"linen":                rgb(0.980392, 0.941176, 0.901961),
	"magenta":              rgb(1.0, 0.0, 1.0),
	"maroon":               rgb(0.501961, 0.0, 0.0),
	"mediumaquamarine":     rgb(0.4, 0.803922, 0.666667),
	"mediumblue":           rgb(0.0, 0.0, 0.803922),
	"mediumorchid":         rgb(0.729412, 0.333333, 0.827451),
	"mediumpurple":         rgb(0.576471, 0.439216, 0.858824),
	"mediumseagreen":       rgb(0.235294, 0.701961, 0.443137),
	"mediumslateblue":      rgb(0.482353, 0.407843, 0.933333),
	"mediumspringgreen":    rgb(0.0, 0.980392, 0.603922),
	"mediumturquoise":      rgb(0.282353, 0.819608, 0.8),
	"mediumvioletred":      rgb(0.780392, 0.082353, 0.521569),
	"menu":                 rgb255(212, 208, 200),
	"menutext":             rgb(0.0, 0.0, 0.0),
	"midnightblue":         rgb(0.098039, 0.098039, 0.439216),
	"mintcream":            rgb(0.960784, 1.0, 0.980392),
	"mistyrose":            rgb(1.0, 0.894118, 0.882353),
	"moccasin":             rgb(1.0, 0.894118, 0.709804),
	"navajowhite":          rgb(1.0, 0.870588, 0.678431),
	"navy":                 rgb(0.0, 0.0, 0.501961),
	"oldlace":              rgb(0.992157, 0.960784, 0.901961),
	"olive":                rgb(0.501961, 0.501961, 0.0),
	"olivedrab":            rgb(0.419608, 0.556863, 0.137255),
	"orange":               rgb(1.0, 0.647059, 0.0),
	"orangered":            rgb(1.0, 0.270588, 0.0),
	"orchid":               rgb(0.854902, 0.439216, 0.839216),
	"palegoldenrod":        rgb(0.933333, 0.909804, 0.666667),
	"palegreen":            rgb(0.596078, 0.984314, 0.596078),
	"paleturquoise":        rgb(0.686275, 0.933333, 0.933333),
	"palevioletred":        rgb(0.858824, 0.439216, 0.576471),
	"papayawhip":           rgb(1.0, 0.937255, 0.835294),
	"peachpuff":            rgb(1.0, 0.854902, 0.72549),
	"peru":                 rgb(0.803922, 0.521569, 0.247059),
	"pink":                 rgb(1.0, 0.752941, 0.796078),
	"plum":                 rgb(0.866667, 0.627451, 0.866667),
	"powderblue":           rgb(0.690196, 0.878431, 0.901961),
	"purple":               rgb(0.501961, 0.0, 0.501961),
	"red":                  rgb(1.0, 0.0, 0.0),
	"rosybrown":            rgb(0.737255, 0.560784, 0.560784),
	"royalblue":            rgb(0.254902, 0.411765, 0.882353),
	"saddlebrown":          rgb(0.545098, 0.270588, 0.07451),
	"salmon":               rgb(0.980392, 0.501961, 0.447059),
	"sandybrown":           rgb(0.956863, 0.643137, 0.376471),
	"scrollbar":            rgb255(212, 208, 200),
	"seagreen":             rgb(0.180392, 0.545098, 0.341176),
	"seashell":             rgb(1.0, 0.960784, 0.933333),
	"sienna":               rgb(0.627451, 0.321569, 0.176471),
	"silver":               rgb(0.752941, 0.752941, 0.752941),
	"skyblue":              rgb(0.529412, 0.807843, 0.921569),
	"slateblue":            rgb(0.415686, 0.352941, 0.803922),
	"slategray":            rgb(0.439216, 0.501961, 0.564706),
	"slategrey":            rgb(0.439216, 0.501961, 0.564706),
	"snow":                 rgb(1.0, 0.980392, 0.980392),
	"springgreen":          rgb(0.0, 1.0, 0.498039),
	"steelblue":            rgb(0.27451, 0.509804, 0.705882),
	"tan":                  rgb(0.823529, 0.705882, 0.54902),
	"teal":                 rgb(0.0, 0.501961, 0.501961),
	"thistle":              rgb(0.847059, 0.74902, 0.847059),
	"threeddarkshadow":     rgb255(64, 64, 64),
	"threedface":           rgb255(212, 208, 200),
	"threedhighlight":      rgb255(255, 255, 255),
	"threedlightshadow":    rgb255(212, 208, 200),
	"threedshadow":         rgb255(128, 128, 128),
	"tomato":               rgb(1.0, 0.388235, 0.278431),
	"turquoise":            rgb(0.25098, 0.878431, 0.815686),
	"violet":               rgb(0.933333, 0.509804, 0.933333),
	"wheat":                rgb(0.960784, 0.870588, 0.701961),
	"white":                rgb(1.0, 1.0, 1.0),
	"whitesmoke":           rgb(0.960784, 0.960784, 0.960784),
	"window":               rgb255(255, 255, 255),
	"windowframe":          rgb(0.0, 0.0, 0.0),
	"windowtext":           rgb(0.0, 0.0, 0.0),
	"yellow":               rgb(1.0, 1.0, 0.0),
	"yellowgreen":          rgb(0.603922, 0.803922, 0.196078),
}
