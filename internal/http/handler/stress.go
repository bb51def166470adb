package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"stresstrack/internal/service"
	"stresstrack/internal/validate"
)

// CreateStressLevelRecord handles POST /stress-tracking/stress-level-record.
func CreateStressLevelRecord(svc service.StressTrackingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.CreateRecordInput
		if err := c.BodyParser(&in); err != nil {
			return respondFailure(c, fiber.StatusBadRequest, "invalid request body")
		}
		if in.UserID == "" {
			return respondFailure(c, fiber.StatusBadRequest, service.ErrUserIDRequired.Error())
		}
		// Transport-boundary check; the service re-checks through the same
		// validate function.
		if err := validate.StressLevel(in.StressLevel); err != nil {
			return respondFailure(c, fiber.StatusBadRequest, err.Error())
		}

		rec, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return respondFailure(c, statusForError(err), err.Error())
		}
		return respondSuccess(c, fiber.StatusCreated, rec)
	}
}

// UploadImage handles POST /stress-tracking/upload-image
// (multipart/form-data, field name: image).
func UploadImage(svc service.StressTrackingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("image")
		if err != nil {
			return respondFailure(c, fiber.StatusBadRequest, "image file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return respondFailure(c, fiber.StatusBadRequest, "cannot open uploaded file")
		}
		defer f.Close()

		imageURL, err := svc.UploadImage(c.UserContext(), f, fh.Header.Get("Content-Type"))
		if err != nil {
			return respondFailure(c, statusForError(err), err.Error())
		}
		return respondSuccess(c, fiber.StatusCreated, fiber.Map{"imageUrl": imageURL})
	}
}

// GetStressTrackingRecords handles
// GET /stress-tracking/:userId/stress-tracking-records?page=&pageSize=.
// Both query parameters are required positive integers.
func GetStressTrackingRecords(svc service.StressTrackingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Params("userId")

		page, err := strconv.Atoi(c.Query("page"))
		if err != nil || page < 1 {
			return respondFailure(c, fiber.StatusBadRequest, "page must be a positive integer")
		}
		pageSize, err := strconv.Atoi(c.Query("pageSize"))
		if err != nil || pageSize < 1 {
			return respondFailure(c, fiber.StatusBadRequest, "pageSize must be a positive integer")
		}

		records, err := svc.GetAllRecords(c.UserContext(), userID, page, pageSize)
		if err != nil {
			return respondFailure(c, statusForError(err), err.Error())
		}
		return respondSuccess(c, fiber.StatusOK, records)
	}
}
