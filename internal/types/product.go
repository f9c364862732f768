package types

import (
	ierr "github.com/netserve/catalog/internal/errors"
)

// BandwidthUnit is the unit a product's bandwidth figure is expressed in.
type BandwidthUnit string

const (
	BandwidthUnitMbps BandwidthUnit = "mbps"
	BandwidthUnitGbps BandwidthUnit = "gbps"
	BandwidthUnitTB   BandwidthUnit = "tb"
)

func (u BandwidthUnit) String() string {
	return string(u)
}

func (u BandwidthUnit) Validate() error {
	switch u {
	case BandwidthUnitMbps, BandwidthUnitGbps, BandwidthUnitTB:
		return nil
	}
	return ierr.NewError("invalid bandwidth unit").
		WithHint("Bandwidth unit must be one of mbps, gbps, tb").
		WithReportableDetails(map[string]interface{}{
			"bandwidth_unit": u,
		}).
		Mark(ierr.ErrValidation)
}

// ConnectionType is the physical delivery medium of a product.
type ConnectionType string

const (
	ConnectionTypeFiber     ConnectionType = "fiber"
	ConnectionTypeWireless  ConnectionType = "wireless"
	ConnectionTypeCopper    ConnectionType = "copper"
	ConnectionTypeSatellite ConnectionType = "satellite"
)

func (t ConnectionType) String() string {
	return string(t)
}

func (t ConnectionType) Validate() error {
	switch t {
	case ConnectionTypeFiber, ConnectionTypeWireless, ConnectionTypeCopper, ConnectionTypeSatellite:
		return nil
	}
	return ierr.NewError("invalid connection type").
		WithHint("Connection type must be one of fiber, wireless, copper, satellite").
		WithReportableDetails(map[string]interface{}{
			"connection_type": t,
		}).
		Mark(ierr.ErrValidation)
}
