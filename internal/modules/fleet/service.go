package fleet

import (
	"context"

	"taxiforms/internal/domain"
)

type Service struct {
	vehicles VehicleRepository
	drivers  DriverRepository
}

func NewService(vehicles VehicleRepository, drivers DriverRepository) *Service {
	return &Service{vehicles: vehicles, drivers: drivers}
}

func (s *Service) ListVehicles(ctx context.Context, tenantID string, activeOnly bool) ([]domain.Vehicle, error) {
	if activeOnly {
		return s.vehicles.ListActive(ctx, tenantID)
	}
	return s.vehicles.List(ctx, tenantID)
}

func (s *Service) GetVehicle(ctx context.Context, tenantID string, id int64) (*domain.Vehicle, error) {
	v, err := s.vehicles.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrNotFound
	}
	return v, nil
}

func (s *Service) CreateVehicle(ctx context.Context, tenantID string, req VehicleRequest) (*domain.Vehicle, error) {
	v := &domain.Vehicle{
		TenantID:    tenantID,
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Capacity:    req.Capacity,
		Luggage:     req.Luggage,
		BaseFare:    req.BaseFare,
		PerKM:       req.PerKM,
		PerHour:     req.PerHour,
		MinimumFare: req.MinimumFare,
		SortOrder:   req.SortOrder,
		IsActive:    true,
	}
	if req.IsActive != nil {
		v.IsActive = *req.IsActive
	}
	if err := s.vehicles.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Service) UpdateVehicle(ctx context.Context, tenantID string, id int64, req VehicleRequest) (*domain.Vehicle, error) {
	v, err := s.GetVehicle(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	v.Name = req.Name
	v.Description = req.Description
	v.Icon = req.Icon
	v.Capacity = req.Capacity
	v.Luggage = req.Luggage
	v.BaseFare = req.BaseFare
	v.PerKM = req.PerKM
	v.PerHour = req.PerHour
	v.MinimumFare = req.MinimumFare
	v.SortOrder = req.SortOrder
	if req.IsActive != nil {
		v.IsActive = *req.IsActive
	}

	if err := s.vehicles.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Service) DeleteVehicle(ctx context.Context, tenantID string, id int64) error {
	if _, err := s.GetVehicle(ctx, tenantID, id); err != nil {
		return err
	}
	return s.vehicles.Delete(ctx, tenantID, id)
}

func (s *Service) ListDrivers(ctx context.Context, tenantID string) ([]domain.Driver, error) {
	return s.drivers.List(ctx, tenantID)
}

func (s *Service) GetDriver(ctx context.Context, tenantID string, id int64) (*domain.Driver, error) {
	d, err := s.drivers.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrNotFound
	}
	return d, nil
}

func (s *Service) CreateDriver(ctx context.Context, tenantID string, req DriverRequest) (*domain.Driver, error) {
	// An assigned vehicle must belong to the same tenant.
	if req.VehicleID != nil {
		if _, err := s.GetVehicle(ctx, tenantID, *req.VehicleID); err != nil {
			return nil, ErrValidation
		}
	}

	status := req.Status
	if status == "" {
		status = domain.DriverActive
	}

	d := &domain.Driver{
		TenantID:  tenantID,
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		LicenseNo: req.LicenseNo,
		VehicleID: req.VehicleID,
		Status:    status,
	}
	if err := s.drivers.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) UpdateDriver(ctx context.Context, tenantID string, id int64, req DriverRequest) (*domain.Driver, error) {
	d, err := s.GetDriver(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if req.VehicleID != nil {
		if _, err := s.GetVehicle(ctx, tenantID, *req.VehicleID); err != nil {
			return nil, ErrValidation
		}
	}

	d.Name = req.Name
	d.Phone = req.Phone
	d.Email = req.Email
	d.LicenseNo = req.LicenseNo
	d.VehicleID = req.VehicleID
	if req.Status != "" {
		d.Status = req.Status
	}

	if err := s.drivers.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) DeleteDriver(ctx context.Context, tenantID string, id int64) error {
	if _, err := s.GetDriver(ctx, tenantID, id); err != nil {
		return err
	}
	return s.drivers.Delete(ctx, tenantID, id)
}
