package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rukundohamza104/radical-design-ltd/internal/database"
	"github.com/rukundohamza104/radical-design-ltd/internal/models"
)

// OTPRepository stores password-reset OTP records. At most one record exists
// per email (issuing deletes prior ones). Lifecycle rules (expiry, attempt
// ceiling, single use) live in the OTP service; this layer only persists
// state.
type OTPRepository interface {
	Insert(ctx context.Context, otp *models.PasswordResetOTP) (*models.PasswordResetOTP, error)
	FindByEmail(ctx context.Context, email string) (*models.PasswordResetOTP, error)
	FindVerified(ctx context.Context, email string) (*models.PasswordResetOTP, error)
	IncrementAttempts(ctx context.Context, email string) error
	MarkVerified(ctx context.Context, email string) error
	DeleteByEmail(ctx context.Context, email string) error
	DeleteVerified(ctx context.Context, email string) error
	DeleteExpired(ctx context.Context) error
}

type otpRepository struct {
	db database.Service
}

func NewOTPRepository(db database.Service) OTPRepository {
	return &otpRepository{db: db}
}

func (r *otpRepository) Insert(ctx context.Context, otp *models.PasswordResetOTP) (*models.PasswordResetOTP, error) {
	otp.ID = primitive.NewObjectID()
	otp.CreatedAt = time.Now()

	_, err := r.db.Collection("password_reset_otps").InsertOne(ctx, otp)
	if err != nil {
		return nil, fmt.Errorf("failed to store OTP: %w", err)
	}
	return otp, nil
}

func (r *otpRepository) FindByEmail(ctx context.Context, email string) (*models.PasswordResetOTP, error) {
	var otp models.PasswordResetOTP
	err := r.db.Collection("password_reset_otps").FindOne(ctx, bson.M{"email": email}).Decode(&otp)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up OTP: %w", err)
	}
	return &otp, nil
}

func (r *otpRepository) FindVerified(ctx context.Context, email string) (*models.PasswordResetOTP, error) {
	var otp models.PasswordResetOTP
	filter := bson.M{"email": email, "verified": true}
	err := r.db.Collection("password_reset_otps").FindOne(ctx, filter).Decode(&otp)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up verified OTP: %w", err)
	}
	return &otp, nil
}

func (r *otpRepository) IncrementAttempts(ctx context.Context, email string) error {
	update := bson.M{"$inc": bson.M{"attempts": 1}}
	_, err := r.db.Collection("password_reset_otps").UpdateOne(ctx, bson.M{"email": email}, update)
	if err != nil {
		return fmt.Errorf("failed to increment OTP attempts: %w", err)
	}
	return nil
}

func (r *otpRepository) MarkVerified(ctx context.Context, email string) error {
	update := bson.M{"$set": bson.M{"verified": true}}
	_, err := r.db.Collection("password_reset_otps").UpdateOne(ctx, bson.M{"email": email}, update)
	if err != nil {
		return fmt.Errorf("failed to mark OTP verified: %w", err)
	}
	return nil
}

func (r *otpRepository) DeleteByEmail(ctx context.Context, email string) error {
	_, err := r.db.Collection("password_reset_otps").DeleteMany(ctx, bson.M{"email": email})
	if err != nil {
		return fmt.Errorf("failed to delete OTPs for email: %w", err)
	}
	return nil
}

func (r *otpRepository) DeleteVerified(ctx context.Context, email string) error {
	filter := bson.M{"email": email, "verified": true}
	_, err := r.db.Collection("password_reset_otps").DeleteMany(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete verified OTPs: %w", err)
	}
	return nil
}

func (r *otpRepository) DeleteExpired(ctx context.Context) error {
	filter := bson.M{"expires_at": bson.M{"$lt": time.Now()}}
	_, err := r.db.Collection("password_reset_otps").DeleteMany(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete expired OTPs: %w", err)
	}
	return nil
}
