package repositories

import "gorm.io/gorm"

// crud holds the by-id operations shared by plots, team members and testimonials.
type crud[T any] struct{ db *gorm.DB }

func (r crud[T]) Create(v *T) error {
	return translate(r.db.Create(v).Error)
}

func (r crud[T]) FindByID(id uint) (*T, error) {
	var v T
	if err := r.db.First(&v, id).Error; err != nil { // First(&v, id) loads where primary key = id.
		return nil, err
	}
	return &v, nil
}

// Update writes every column of an existing row.
func (r crud[T]) Update(v *T) error {
	return translate(r.db.Save(v).Error)
}

// Delete removes a row by primary key. If not found, return ErrRecordNotFound.
func (r crud[T]) Delete(id uint) error {
	var v T
	res := r.db.Delete(&v, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
