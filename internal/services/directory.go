package services

import (
	"context"

	"github.com/faithss/website/internal/db"
	"github.com/faithss/website/internal/directory"
	"github.com/faithss/website/internal/models"
	"github.com/faithss/website/internal/results"
)

// StaffList returns every staff record in fixture order.
func StaffList(ctx context.Context) ([]models.Staff, error) {
	var list []models.Staff
	if err := db.Conn().WithContext(ctx).Order("id asc").Find(&list).Error; err != nil {
		return nil, err
	}
	for i := range list {
		list[i].Bio = CleanText(list[i].Bio)
	}
	return list, nil
}

// StaffDirectory applies q to the stored staff list.
func StaffDirectory(ctx context.Context, q directory.StaffQuery) ([]models.Staff, error) {
	list, err := StaffList(ctx)
	if err != nil {
		return nil, err
	}
	return directory.Staff(list, q), nil
}

// ResultSource reads the stored result records in fixture order.
var ResultSource = results.SourceFunc(func(ctx context.Context) ([]models.Result, error) {
	var list []models.Result
	if err := db.Conn().WithContext(ctx).Order("id asc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
})
