package service

import (
	"fmt"

	"github.com/Badsnus/qrstudio/internal/domain/common/errorz"
	"github.com/Badsnus/qrstudio/internal/domain/dto"
	"github.com/Badsnus/qrstudio/internal/domain/utils/validator"
	"github.com/Badsnus/qrstudio/pkg/colorutil"
	"github.com/Badsnus/qrstudio/pkg/composer"
	"github.com/Badsnus/qrstudio/pkg/logger/types"
	qr "github.com/Badsnus/qrstudio/pkg/qrcode"
	"github.com/Badsnus/qrstudio/pkg/scanner"
)

// ConfirmFunc is asked whether to go on after a low contrast warning.
type ConfirmFunc func(advice colorutil.Advice) bool

type QrService struct {
	logger   *types.Logger
	defaults dto.Defaults
}

func NewQrService(logger *types.Logger, defaults dto.Defaults) *QrService {
	return &QrService{
		logger:   logger,
		defaults: defaults,
	}
}

func (s *QrService) Defaults() dto.Defaults {
	return s.defaults
}

// Generate renders one QR code to disk. A nil confirm proceeds on low contrast.
func (s *QrService) Generate(in dto.QRInput, confirm ConfirmFunc) (*dto.QRResult, error) {
	in = in.WithDefaults(s.defaults)

	if !validator.Data(in.Data) {
		return nil, fmt.Errorf("%w: please enter data to encode", errorz.InvalidParameter)
	}
	if !validator.OutputPath(in.Output) {
		return nil, fmt.Errorf("%w: cannot tell the image format of %q", errorz.InvalidParameter, in.Output)
	}
	if !validator.Transparency(*in.Transparency) {
		return nil, fmt.Errorf("%w: transparency must be within [0, 1], got %v", errorz.InvalidParameter, *in.Transparency)
	}
	if !validator.BorderSize(*in.BorderSize) {
		return nil, fmt.Errorf("%w: border size must not be negative, got %d", errorz.InvalidParameter, *in.BorderSize)
	}

	qrColor, err := colorutil.ParseHex(in.QRColor)
	if err != nil {
		return nil, err
	}
	bgColor, err := colorutil.ParseHex(in.BackgroundColor)
	if err != nil {
		return nil, err
	}
	level, err := qr.ParseRecoveryLevel(in.RecoveryLevel)
	if err != nil {
		return nil, err
	}

	advice := colorutil.Advise(qrColor, bgColor)
	if advice.Low {
		s.logger.Warnf("Low contrast between %s and %s: %s", qrColor, bgColor, advice)
		if confirm != nil && !confirm(advice) {
			return nil, fmt.Errorf("%w: low contrast %s was not accepted", errorz.Aborted, advice)
		}
	}

	bitmap, err := qr.Encode(in.Data, level, *in.ModuleSize, *in.BorderModules)
	if err != nil {
		return nil, err
	}
	s.logger.Debugf("Encoded %d bytes as version %d (%d modules)", len(in.Data), bitmap.Version(), bitmap.Modules())

	req := composer.Request{
		Bitmap:          bitmap,
		QRColor:         qrColor,
		BackgroundColor: bgColor,
		Transparency:    *in.Transparency,
		BorderSize:      *in.BorderSize,
	}
	if in.LogoPath != "" {
		req.Logo, err = composer.LoadLogo(in.LogoPath)
		if err != nil {
			return nil, err
		}
	}

	img, err := composer.Compose(req)
	if err != nil {
		return nil, err
	}
	if err = composer.WriteToFile(img, in.Output); err != nil {
		return nil, err
	}

	result := &dto.QRResult{
		Path:     in.Output,
		Width:    img.Rect.Dx(),
		Height:   img.Rect.Dy(),
		Version:  bitmap.Version(),
		Contrast: advice,
	}

	if in.Verify {
		if err = s.verify(in.Output, in.Data); err != nil {
			if errDelete := composer.Delete(in.Output); errDelete != nil {
				s.logger.Errorf("Failed to remove unreadable %s: %v", in.Output, errDelete)
			}
			return nil, err
		}
		result.Verified = true
	}

	s.logger.Infof("QR code generated successfully: %s (%dx%d)", result.Path, result.Width, result.Height)
	return result, nil
}

func (s *QrService) verify(path, data string) error {
	text, err := scanner.ScanFile(path)
	if err != nil {
		return err
	}
	if text != data {
		return fmt.Errorf("%w: decoded %q, expected %q", errorz.Unreadable, text, data)
	}
	s.logger.Debugf("Verified %s", path)
	return nil
}

// Contrast parses both colors and reports their contrast.
func (s *QrService) Contrast(a, b string) (colorutil.Advice, error) {
	ca, err := colorutil.ParseHex(a)
	if err != nil {
		return colorutil.Advice{}, err
	}
	cb, err := colorutil.ParseHex(b)
	if err != nil {
		return colorutil.Advice{}, err
	}
	return colorutil.Advise(ca, cb), nil
}

// Scan decodes the QR code stored at path.
func (s *QrService) Scan(path string) (string, error) {
	text, err := scanner.ScanFile(path)
	if err != nil {
		return "", err
	}
	s.logger.Debugf("Scanned %s: %d bytes", path, len(text))
	return text, nil
}
