package bessel

import (
	"fmt"
	"math"
)

const fpMin = 1e-300

// invGammaSeries holds the leading coefficients of 1/Gamma(1+z) = sum c_k z^k.
var invGammaSeries = [...]float64{
	1.0,
	0.5772156649015329,
	-0.6558780715202538,
	-0.0420026350340952,
	0.1665386113822915,
	-0.0421977345555443,
	-0.0096219715278770,
	0.0072189432466630,
}

// temmeGammas returns
//
//	gam1 = (1/Gamma(1-mu) - 1/Gamma(1+mu)) / (2 mu)
//	gam2 = (1/Gamma(1-mu) + 1/Gamma(1+mu)) / 2
//	gampl = 1/Gamma(1+mu), gammi = 1/Gamma(1-mu)
//
// for |mu| <= 1/2. gam1 is taken from the series for small mu where the
// difference would cancel.
func temmeGammas(mu float64) (gam1, gam2, gampl, gammi float64) {
	gampl = 1 / math.Gamma(1+mu)
	gammi = 1 / math.Gamma(1-mu)

	if math.Abs(mu) < 0.01 {
		c := invGammaSeries
		m2 := mu * mu
		gam1 = -(c[1] + m2*(c[3]+m2*(c[5]+m2*c[7])))
		gam2 = c[0] + m2*(c[2]+m2*(c[4]+m2*c[6]))

		return gam1, gam2, gampl, gammi
	}

	return (gammi - gampl) / (2 * mu), (gammi + gampl) / 2, gampl, gammi
}

// steed evaluates J_nu(x) and Y_nu(x) for x > 0 with Steed's method: CF1
// gives J'/J at nu, downward recurrence brings it to |mu| <= 1/2, then
// Temme's series (x < 2) or the complex continued fraction CF2 yields
// Y_mu and Y_mu+1, and the Wronskian fixes the normalization.
//
//nolint:cyclop,funlen,gocognit
func steed(nu, x float64) (float64, float64, error) {
	var nl int
	if x < seriesLo {
		nl = int(nu + 0.5)
	} else {
		nl = max(0, int(nu-x+1.5))
	}

	xmu := nu - float64(nl)
	xmu2 := xmu * xmu
	xi := 1 / x
	xi2 := 2 * xi
	w := xi2 / math.Pi

	// CF1 by the modified Lentz method.
	isign := 1.0

	h := nu * xi
	if h < fpMin {
		h = fpMin
	}

	b := xi2 * nu
	d := 0.0
	c := h

	converged := false

	for i := 1; i <= maxIter; i++ {
		b += xi2

		d = b - d
		if math.Abs(d) < fpMin {
			d = fpMin
		}

		c = b - 1/c
		if math.Abs(c) < fpMin {
			c = fpMin
		}

		d = 1 / d
		del := c * d
		h *= del

		if d < 0 {
			isign = -isign
		}

		if math.Abs(del-1) < eps {
			converged = true
			break
		}
	}

	if !converged {
		return 0, 0, fmt.Errorf("%w: CF1 at nu=%v x=%v", ErrNoConvergence, nu, x)
	}

	rjl := isign * 1e-30
	rjpl := h * rjl
	rjl1 := rjl
	fact := nu * xi

	for l := nl; l >= 1; l-- {
		rjtemp := fact*rjl + rjpl
		fact -= xi
		rjpl = fact*rjtemp - rjl
		rjl = rjtemp
	}

	if rjl == 0 {
		rjl = eps
	}

	f := rjpl / rjl

	var rjmu, rymu, ry1 float64

	if x < seriesLo {
		x2 := x / 2
		pimu := math.Pi * xmu

		fact := 1.0
		if math.Abs(pimu) >= eps {
			fact = pimu / math.Sin(pimu)
		}

		d := -math.Log(x2)
		e := xmu * d

		fact2 := 1.0
		if math.Abs(e) >= eps {
			fact2 = math.Sinh(e) / e
		}

		gam1, gam2, gampl, gammi := temmeGammas(xmu)

		ff := 2 / math.Pi * fact * (gam1*math.Cosh(e) + gam2*fact2*d)
		e = math.Exp(e)
		p := e / (gampl * math.Pi)
		q := 1 / (e * math.Pi * gammi)

		pimu2 := pimu / 2

		fact3 := 1.0
		if math.Abs(pimu2) >= eps {
			fact3 = math.Sin(pimu2) / pimu2
		}

		r := math.Pi * pimu2 * fact3 * fact3
		c := 1.0
		d = -x2 * x2
		sum := ff + r*q
		sum1 := p

		converged = false

		for i := 1; i <= maxIter; i++ {
			fi := float64(i)
			ff = (fi*ff + p + q) / (fi*fi - xmu2)
			c *= d / fi
			p /= fi - xmu
			q /= fi + xmu

			del := c * (ff + r*q)
			sum += del
			sum1 += c*p - fi*del

			if math.Abs(del) < (1+math.Abs(sum))*eps {
				converged = true
				break
			}
		}

		if !converged {
			return 0, 0, fmt.Errorf("%w: Temme series at nu=%v x=%v", ErrNoConvergence, nu, x)
		}

		rymu = -sum
		ry1 = -sum1 * xi2
		rymup := xmu*xi*rymu - ry1
		rjmu = w / (rymup - f*rymu)
	} else {
		// CF2 by the Lentz method in complex arithmetic, spelled out in
		// real and imaginary parts.
		a := 0.25 - xmu2
		p := -0.5 * xi
		q := 1.0
		br := 2 * x
		bi := 2.0

		fact := a * xi / (p*p + q*q)
		cr := br + q*fact
		ci := bi + p*fact
		den := br*br + bi*bi
		dr := br / den
		di := -bi / den
		dlr := cr*dr - ci*di
		dli := cr*di + ci*dr
		p, q = p*dlr-q*dli, p*dli+q*dlr

		converged = false

		for i := 2; i <= maxIter; i++ {
			a += float64(2 * (i - 1))
			bi += 2

			dr = a*dr + br
			di = a*di + bi

			if math.Abs(dr)+math.Abs(di) < fpMin {
				dr = fpMin
			}

			fact = a / (cr*cr + ci*ci)
			cr = br + cr*fact
			ci = bi - ci*fact

			if math.Abs(cr)+math.Abs(ci) < fpMin {
				cr = fpMin
			}

			den = dr*dr + di*di
			dr /= den
			di /= -den
			dlr = cr*dr - ci*di
			dli = cr*di + ci*dr
			p, q = p*dlr-q*dli, p*dli+q*dlr

			if math.Abs(dlr-1)+math.Abs(dli) < eps {
				converged = true
				break
			}
		}

		if !converged {
			return 0, 0, fmt.Errorf("%w: CF2 at nu=%v x=%v", ErrNoConvergence, nu, x)
		}

		gam := (p - f) / q
		rjmu = math.Copysign(math.Sqrt(w/((p-f)*gam+q)), rjl)
		rymu = rjmu * gam
		rymup := rymu * (p + q/gam)
		ry1 = xmu*xi*rymu - rymup
	}

	rj := rjl1 * (rjmu / rjl)

	for i := 1; i <= nl; i++ {
		rytemp := (xmu+float64(i))*xi2*ry1 - rymu
		rymu = ry1
		ry1 = rytemp
	}

	return rj, rymu, nil
}
