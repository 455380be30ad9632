package hankel

import (
	"io"
)

// Banner is written once by New unless suppressed with WithBannerWriter(nil).
const Banner = `###############################################################################
#                                                                             #
#                Fast Bessel Transform (FBT) for TMDs                         #
#     Zhongbo Kang, Alexei Prokudin, Nobuo Sato, John Terry                   #
#                   Please cite Kang:2019ctl                                  #
#                  N is number of function calls                              #
#                  nu is Bessel function order                                #
#                                                                             #
###############################################################################
`

func writeBanner(w io.Writer) error {
	if w == nil {
		return nil
	}

	_, err := io.WriteString(w, Banner)

	return err
}
